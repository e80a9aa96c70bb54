package manager

// Manager is a pluggable lifecycle participant driven by the application host
// (e.g. a world renderer, an overlay, a demo). Embed Base to get no-op defaults
// and override only the hooks you need.
//
// The host calls Initialise once before the frame loop, Render once per frame and
// Shutdown once after the loop, always in registration order. PreInitialise,
// PreRender and PostRender are reserved and currently never called by the host.
type Manager interface {
	PreInitialise()
	Initialise()

	PreRender()
	Render()
	PostRender()

	Shutdown()
}

// Releaser is implemented by managers that hold resources beyond Shutdown.
// The host calls Release after Shutdown and then drops its reference.
type Releaser interface {
	Release()
}

// Base implements every Manager hook as a no-op.
type Base struct{}

func (Base) PreInitialise() {}
func (Base) Initialise()    {}
func (Base) PreRender()     {}
func (Base) Render()        {}
func (Base) PostRender()    {}
func (Base) Shutdown()      {}

// Hooks adapts plain functions to a Manager. Nil fields are no-ops.
// Useful for small managers wired in main (same shape as graphics.Run(update, draw) used to be).
type Hooks struct {
	OnPreInitialise func()
	OnInitialise    func()
	OnPreRender     func()
	OnRender        func()
	OnPostRender    func()
	OnShutdown      func()
	OnRelease       func()
}

func (h *Hooks) PreInitialise() { call(h.OnPreInitialise) }
func (h *Hooks) Initialise()    { call(h.OnInitialise) }
func (h *Hooks) PreRender()     { call(h.OnPreRender) }
func (h *Hooks) Render()        { call(h.OnRender) }
func (h *Hooks) PostRender()    { call(h.OnPostRender) }
func (h *Hooks) Shutdown()      { call(h.OnShutdown) }

// Release implements Releaser.
func (h *Hooks) Release() { call(h.OnRelease) }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
