package app

import (
	"fmt"

	"level-viewer/internal/graphics"
)

// events is the shared call log of a fake platform and its recording managers.
type events struct {
	calls []string
}

func (e *events) add(format string, args ...any) {
	e.calls = append(e.calls, fmt.Sprintf(format, args...))
}

func (e *events) count(call string) int {
	n := 0
	for _, c := range e.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakePlatform is an in-memory graphics.Platform. The window reports close once
// closeAfterPolls PollEvents calls have happened, so a value of N yields N frames.
type fakePlatform struct {
	ev *events

	initErr    error
	createErr  error
	nilWindow  bool
	contextErr error

	closeAfterPolls int
	fbWidth         int
	fbHeight        int
	// onPoll runs inside PollEvents with the 1-based poll count.
	onPoll func(n int)

	polls      int
	win        *fakeWindow
	cfg        graphics.WindowConfig
	clearColor graphics.Color
	swap       int
	viewports  [][2]int
}

func newFakePlatform(ev *events, closeAfterPolls int) *fakePlatform {
	return &fakePlatform{ev: ev, closeAfterPolls: closeAfterPolls, fbWidth: 640, fbHeight: 480}
}

func (p *fakePlatform) Init() error {
	p.ev.add("platform.Init")
	return p.initErr
}

func (p *fakePlatform) CreateWindow(cfg graphics.WindowConfig) (graphics.Window, error) {
	p.ev.add("platform.CreateWindow")
	p.cfg = cfg
	if p.createErr != nil {
		return nil, p.createErr
	}
	if p.nilWindow {
		return nil, nil
	}
	p.win = &fakeWindow{p: p}
	return p.win, nil
}

func (p *fakePlatform) SwapInterval(interval int) {
	p.ev.add("platform.SwapInterval(%d)", interval)
	p.swap = interval
}

func (p *fakePlatform) PollEvents() {
	p.polls++
	p.ev.add("platform.PollEvents")
	if p.onPoll != nil {
		p.onPoll(p.polls)
	}
}

func (p *fakePlatform) Terminate() {
	p.ev.add("platform.Terminate")
}

func (p *fakePlatform) Viewport(x, y, width, height int) {
	p.ev.add("platform.Viewport(%d,%d,%d,%d)", x, y, width, height)
	p.viewports = append(p.viewports, [2]int{width, height})
}

func (p *fakePlatform) ClearColor(c graphics.Color) {
	p.ev.add("platform.ClearColor")
	p.clearColor = c
}

func (p *fakePlatform) Clear() {
	p.ev.add("platform.Clear")
}

type fakeWindow struct {
	p        *fakePlatform
	onResize func(width, height int)
}

func (w *fakeWindow) MakeContextCurrent() error {
	w.p.ev.add("window.MakeContextCurrent")
	return w.p.contextErr
}

func (w *fakeWindow) FramebufferSize() (int, int) {
	w.p.ev.add("window.FramebufferSize")
	return w.p.fbWidth, w.p.fbHeight
}

func (w *fakeWindow) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.p.ev.add("window.SetFramebufferSizeCallback")
	w.onResize = fn
}

// ShouldClose is not logged; it is polled once per iteration plus once at loop exit.
func (w *fakeWindow) ShouldClose() bool {
	return w.p.polls >= w.p.closeAfterPolls
}

func (w *fakeWindow) SwapBuffers() {
	w.p.ev.add("window.SwapBuffers")
}

func (w *fakeWindow) Destroy() {
	w.p.ev.add("window.Destroy")
}

// resize simulates the user resizing the window.
func (w *fakeWindow) resize(width, height int) {
	w.p.fbWidth, w.p.fbHeight = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// recorder is a Manager that logs every hook, including the reserved ones.
type recorder struct {
	name string
	ev   *events

	onInitialise func()
	onRender     func()
}

func (r *recorder) PreInitialise() { r.ev.add("%s.PreInitialise", r.name) }

func (r *recorder) Initialise() {
	r.ev.add("%s.Initialise", r.name)
	if r.onInitialise != nil {
		r.onInitialise()
	}
}

func (r *recorder) PreRender() { r.ev.add("%s.PreRender", r.name) }

func (r *recorder) Render() {
	r.ev.add("%s.Render", r.name)
	if r.onRender != nil {
		r.onRender()
	}
}

func (r *recorder) PostRender() { r.ev.add("%s.PostRender", r.name) }
func (r *recorder) Shutdown()   { r.ev.add("%s.Shutdown", r.name) }
func (r *recorder) Release()    { r.ev.add("%s.Release", r.name) }
