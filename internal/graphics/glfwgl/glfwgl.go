// Package glfwgl implements graphics.Platform on GLFW with a legacy OpenGL context.
package glfwgl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"level-viewer/internal/graphics"
)

// Platform drives GLFW windows and the GL 2.x fixed-function pipeline.
// The caller must have locked the OS thread (runtime.LockOSThread in main's init).
type Platform struct {
	glLoaded bool
}

var (
	_ graphics.Platform = (*Platform)(nil)
	_ graphics.Painter  = (*Platform)(nil)
)

// New returns an uninitialised GLFW platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}
	return nil
}

func (p *Platform) CreateWindow(cfg graphics.WindowConfig) (graphics.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextVersionMinor)
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow: %w", err)
	}
	return &window{p: p, w: w}, nil
}

func (p *Platform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) Terminate() {
	glfw.Terminate()
	p.glLoaded = false
}

func (p *Platform) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (p *Platform) ClearColor(c graphics.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (p *Platform) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawTriangle draws with glBegin/glEnd. The default GL matrices are identity, so
// vertex coordinates are used as-is in NDC.
func (p *Platform) DrawTriangle(a, b, c graphics.Vertex) {
	gl.Begin(gl.TRIANGLES)
	for _, v := range [3]graphics.Vertex{a, b, c} {
		gl.Color4f(v.Color.R, v.Color.G, v.Color.B, v.Color.A)
		gl.Vertex2f(v.X, v.Y)
	}
	gl.End()
}

type window struct {
	p *Platform
	w *glfw.Window
}

// MakeContextCurrent binds the context and, the first time, loads the GL entry points
// (they can only be resolved once a context is current).
func (w *window) MakeContextCurrent() error {
	w.w.MakeContextCurrent()
	if w.p.glLoaded {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init: %w", err)
	}
	w.p.glLoaded = true
	return nil
}

func (w *window) FramebufferSize() (int, int) {
	return w.w.GetFramebufferSize()
}

func (w *window) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.w.SetFramebufferSizeCallback(nil)
		return
	}
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *window) ShouldClose() bool {
	return w.w.ShouldClose()
}

func (w *window) SwapBuffers() {
	w.w.SwapBuffers()
}

func (w *window) Destroy() {
	w.w.Destroy()
}
