// Package rlgfx implements graphics.Platform on raylib.
package rlgfx

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"level-viewer/internal/graphics"
)

// Platform drives a single raylib window. raylib picks its GL version at build time,
// so the context hints in WindowConfig are ignored.
type Platform struct {
	win     *window
	clear   rl.Color
	drawing bool
}

var (
	_ graphics.Platform = (*Platform)(nil)
	_ graphics.Painter  = (*Platform)(nil)
)

// New returns a raylib platform that clears to black.
func New() *Platform {
	return &Platform{clear: rl.Black}
}

// Init is a no-op: raylib initialises its windowing layer inside InitWindow.
func (p *Platform) Init() error {
	return nil
}

func (p *Platform) CreateWindow(cfg graphics.WindowConfig) (graphics.Window, error) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: InitWindow failed")
	}
	rl.SetExitKey(rl.KeyNull) // close via window button only; the viewer has no input handling
	p.win = &window{p: p}
	return p.win, nil
}

func (p *Platform) SwapInterval(interval int) {
	if interval > 0 {
		rl.SetWindowState(rl.FlagVsyncHint)
		return
	}
	rl.ClearWindowState(rl.FlagVsyncHint)
}

// PollEvents forwards raylib's resize flag to the framebuffer callback. Input itself
// is polled by raylib at the end of EndDrawing.
func (p *Platform) PollEvents() {
	if p.win == nil || p.win.onResize == nil {
		return
	}
	if rl.IsWindowResized() {
		p.win.onResize(rl.GetRenderWidth(), rl.GetRenderHeight())
	}
}

func (p *Platform) Terminate() {
	p.win = nil
	p.drawing = false
}

func (p *Platform) Viewport(x, y, width, height int) {
	rl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (p *Platform) ClearColor(c graphics.Color) {
	r, g, b, a := c.RGBA8()
	p.clear = rl.NewColor(r, g, b, a)
}

// Clear opens the raylib frame; SwapBuffers closes it.
func (p *Platform) Clear() {
	if !p.drawing {
		rl.BeginDrawing()
		p.drawing = true
	}
	rl.ClearBackground(p.clear)
}

// DrawTriangle draws through rlgl in screen space. Flipping Y to screen space reverses
// the winding, so b and c are swapped to keep the face front-facing.
func (p *Platform) DrawTriangle(a, b, c graphics.Vertex) {
	w, h := rl.GetRenderWidth(), rl.GetRenderHeight()
	rl.Begin(rl.Triangles)
	for _, v := range [3]graphics.Vertex{a, c, b} {
		r, g, bl, al := v.Color.RGBA8()
		x, y := v.Screen(w, h)
		rl.Color4ub(r, g, bl, al)
		rl.Vertex2f(x, y)
	}
	rl.End()
}

type window struct {
	p        *Platform
	onResize func(width, height int)
}

func (w *window) MakeContextCurrent() error {
	return nil
}

func (w *window) FramebufferSize() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (w *window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.onResize = fn
}

func (w *window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *window) SwapBuffers() {
	if !w.p.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	w.p.drawing = false
}

func (w *window) Destroy() {
	rl.CloseWindow()
}
