package demo

import (
	"github.com/chewxy/math32"

	"level-viewer/internal/graphics"
	"level-viewer/internal/manager"
)

// TriangleRadius is the distance from the center to each vertex, in NDC.
const TriangleRadius = 0.75

// HelloTriangle is the demo Manager: one equilateral triangle with a red, a green and a
// blue corner, centered in the viewport.
type HelloTriangle struct {
	manager.Base

	painter  graphics.Painter
	vertices []graphics.Vertex
}

// NewHelloTriangle returns a triangle drawn with p.
func NewHelloTriangle(p graphics.Painter) *HelloTriangle {
	return &HelloTriangle{painter: p}
}

// Initialise builds the vertex data.
func (h *HelloTriangle) Initialise() {
	h.vertices = TriangleVertices(TriangleRadius)
}

// Render draws the triangle. Nothing is drawn before Initialise or after Shutdown.
func (h *HelloTriangle) Render() {
	if len(h.vertices) != 3 || h.painter == nil {
		return
	}
	h.painter.DrawTriangle(h.vertices[0], h.vertices[1], h.vertices[2])
}

// Shutdown drops the vertex data.
func (h *HelloTriangle) Shutdown() {
	h.vertices = nil
}

// Vertices returns the current vertex data (nil when not initialised).
func (h *HelloTriangle) Vertices() []graphics.Vertex {
	return h.vertices
}

// TriangleVertices returns the corners of an equilateral triangle of the given circumradius,
// pointing up, in counter-clockwise order: top (red), bottom-left (green), bottom-right (blue).
func TriangleVertices(radius float32) []graphics.Vertex {
	colors := [3]graphics.Color{
		{R: 1, G: 0, B: 0, A: 1},
		{R: 0, G: 1, B: 0, A: 1},
		{R: 0, G: 0, B: 1, A: 1},
	}
	out := make([]graphics.Vertex, 3)
	for i := range out {
		angle := math32.Pi/2 + float32(i)*2*math32.Pi/3
		out[i] = graphics.Vertex{
			X:     radius * math32.Cos(angle),
			Y:     radius * math32.Sin(angle),
			Color: colors[i],
		}
	}
	return out
}
