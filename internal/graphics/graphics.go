package graphics

import "math"

// Default window settings. The context version is kept at 2.0 so the viewer runs on
// legacy drivers; the fixed-function pipeline is all the host needs.
const (
	DefaultTitle               = "Open Source Level Viewer"
	DefaultWidth               = 640
	DefaultHeight              = 480
	DefaultContextVersionMajor = 2
	DefaultContextVersionMinor = 0
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Black is opaque black, the default clear color.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// RGBA8 converts c to 8-bit channels, clamping out of range components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

func channel8(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

// WindowConfig describes the window and context requested from the platform.
type WindowConfig struct {
	Title               string
	Width               int
	Height              int
	ContextVersionMajor int
	ContextVersionMinor int
}

// DefaultWindowConfig returns the 640x480 GL 2.0 window used when nothing else is configured.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:               DefaultTitle,
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		ContextVersionMajor: DefaultContextVersionMajor,
		ContextVersionMinor: DefaultContextVersionMinor,
	}
}

// Platform is the windowing and graphics subsystem the application host drives.
// All methods must be called from the thread that called Init.
type Platform interface {
	// Init initialises the windowing subsystem.
	Init() error
	// CreateWindow creates a window with an attached context. It does not make the context current.
	CreateWindow(cfg WindowConfig) (Window, error)
	// SwapInterval sets the number of vertical blanks to wait on swap (1 = vsync).
	SwapInterval(interval int)
	// PollEvents processes pending window events and dispatches callbacks.
	PollEvents()
	// Terminate tears the subsystem down. Windows must be destroyed first.
	Terminate()

	// Viewport sets the active viewport of the current context.
	Viewport(x, y, width, height int)
	// ClearColor sets the color used by Clear.
	ClearColor(c Color)
	// Clear clears the color buffer.
	Clear()
}

// Window is a window with a graphics context.
type Window interface {
	MakeContextCurrent() error
	FramebufferSize() (width, height int)
	// SetFramebufferSizeCallback replaces the callback fired from PollEvents when the framebuffer is resized.
	SetFramebufferSizeCallback(fn func(width, height int))
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}

// Vertex is a 2D position in normalized device coordinates ([-1, 1] on both axes, +Y up)
// with a per-vertex color.
type Vertex struct {
	X, Y  float32
	Color Color
}

// Screen maps v to pixel coordinates of a width x height framebuffer with the origin
// at the top-left corner (+Y down).
func (v Vertex) Screen(width, height int) (x, y float32) {
	x = (v.X + 1) / 2 * float32(width)
	y = (1 - v.Y) / 2 * float32(height)
	return x, y
}

// Painter is implemented by platforms that can draw colored triangles in immediate mode.
// Managers that draw take a Painter rather than reaching for a specific backend.
type Painter interface {
	DrawTriangle(a, b, c Vertex)
}
