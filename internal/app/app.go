package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"level-viewer/internal/graphics"
	"level-viewer/internal/manager"
)

// Application owns the window and an ordered list of Managers, and drives them through
// one run: window setup, Initialise, the frame loop, Shutdown.
// It is single threaded; every method must be called from the thread that owns the platform.
type Application struct {
	platform graphics.Platform
	window   graphics.Window
	managers []manager.Manager
	log      logrus.FieldLogger

	windowCfg    graphics.WindowConfig
	clearColor   graphics.Color
	swapInterval int

	state    State
	frames   uint64
	viewport [2]int
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the diagnostic stream. The default is logrus' standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Application) {
		if log != nil {
			a.log = log
		}
	}
}

// WithWindowConfig overrides the requested window.
func WithWindowConfig(cfg graphics.WindowConfig) Option {
	return func(a *Application) { a.windowCfg = cfg }
}

// WithClearColor overrides the clear color.
func WithClearColor(c graphics.Color) Option {
	return func(a *Application) { a.clearColor = c }
}

// WithSwapInterval overrides the swap interval (1 = vsync).
func WithSwapInterval(interval int) Option {
	return func(a *Application) { a.swapInterval = interval }
}

// New returns an Application that will open a 640x480 "Open Source Level Viewer" window
// on p, cleared to opaque black with vsync, unless opts say otherwise.
func New(p graphics.Platform, opts ...Option) *Application {
	a := &Application{
		platform:     p,
		log:          logrus.StandardLogger(),
		windowCfg:    graphics.DefaultWindowConfig(),
		clearColor:   graphics.Black,
		swapInterval: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddManager appends m to the registry. Managers are driven in insertion order.
// The same manager added twice is driven twice. Only managers added before Init are
// driven; a nil manager is refused.
func (a *Application) AddManager(m manager.Manager) bool {
	if m == nil {
		return false
	}
	a.managers = append(a.managers, m)
	return true
}

// RemoveManager is not supported: it reports success and leaves the registry untouched.
func (a *Application) RemoveManager(m manager.Manager) bool {
	return true
}

// Managers returns a copy of the registry in call order.
func (a *Application) Managers() []manager.Manager {
	return slices.Clone(a.managers)
}

// State returns where the Application is in its lifecycle.
func (a *Application) State() State {
	return a.state
}

// Frames returns the number of frames the loop has presented.
func (a *Application) Frames() uint64 {
	return a.frames
}

// Viewport returns the size of the last viewport applied.
func (a *Application) Viewport() (width, height int) {
	return a.viewport[0], a.viewport[1]
}

// Init runs the whole application. See InitContext.
func (a *Application) Init() ShutdownRequest {
	return a.InitContext(context.Background())
}

// InitContext sets up the window and context, initialises every Manager, runs the frame
// loop until the window is asked to close or ctx is done, shuts every Manager down and
// tears the window down. It returns the exit code the process should terminate with;
// it never exits the process itself.
func (a *Application) InitContext(ctx context.Context) ShutdownRequest {
	if a.state != Uninitialized {
		a.log.WithField("state", a.state).Error("Init called twice")
		return ShutdownRequest{Code: ExitFailure, Err: ErrAlreadyInitialised}
	}

	if err := a.platform.Init(); err != nil {
		err = fmt.Errorf("%w: %w", ErrPlatformInit, err)
		a.log.WithError(err).Error("windowing subsystem failed to initialise")
		a.state = Terminated
		return ShutdownRequest{Code: ExitFailure, Err: err}
	}

	win, err := a.platform.CreateWindow(a.windowCfg)
	if err != nil || win == nil {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrWindowCreate, err)
		} else {
			err = ErrWindowCreate
		}
		a.log.WithError(err).Error("window creation failed")
		return a.shutdown(ExitFailure, err)
	}
	a.window = win
	a.state = WindowCreated
	a.log.WithFields(logrus.Fields{
		"title":   a.windowCfg.Title,
		"width":   a.windowCfg.Width,
		"height":  a.windowCfg.Height,
		"context": fmt.Sprintf("%d.%d", a.windowCfg.ContextVersionMajor, a.windowCfg.ContextVersionMinor),
	}).Info("window created")

	if err := win.MakeContextCurrent(); err != nil {
		err = fmt.Errorf("%w: %w", ErrContext, err)
		a.log.WithError(err).Error("graphics context failed to load")
		return a.shutdown(ExitFailure, err)
	}

	a.setViewport(win.FramebufferSize())
	win.SetFramebufferSizeCallback(a.setViewport)
	a.platform.ClearColor(a.clearColor)
	a.platform.SwapInterval(a.swapInterval)

	// Managers added from inside a hook from here on are not driven.
	managers := slices.Clone(a.managers)
	for _, m := range managers {
		m.Initialise()
	}
	a.state = ManagersInitialised
	a.log.WithField("managers", len(managers)).Debug("managers initialised")

	a.state = Looping
	a.loop(ctx, managers)

	for _, m := range managers {
		m.Shutdown()
		if r, ok := m.(manager.Releaser); ok {
			r.Release()
		}
	}
	if late := len(a.managers) - len(managers); late > 0 {
		a.log.WithField("managers", late).Warn("managers added after Init were never driven")
	}
	a.managers = nil
	a.state = ManagersShutdown
	a.log.WithField("frames", a.frames).Info("managers shut down")

	return a.Shutdown(ExitSuccess)
}

// loop presents one frame per iteration: clear, render, swap, poll. The close signal and
// ctx are checked at the start of each iteration only.
func (a *Application) loop(ctx context.Context, managers []manager.Manager) {
	for !a.window.ShouldClose() {
		if ctx.Err() != nil {
			a.log.WithError(ctx.Err()).Info("frame loop interrupted")
			return
		}
		a.platform.Clear()
		render(managers)
		a.window.SwapBuffers()
		a.frames++
		a.platform.PollEvents()
	}
}

func render(managers []manager.Manager) {
	for _, m := range managers {
		m.Render()
	}
}

func (a *Application) setViewport(width, height int) {
	a.platform.Viewport(0, 0, width, height)
	a.viewport = [2]int{width, height}
	a.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("viewport")
}

// Shutdown destroys the window, terminates the windowing subsystem and returns the
// request for the entry point to exit with code. Calling it again is a no-op that
// returns the same code.
func (a *Application) Shutdown(code ExitCode) ShutdownRequest {
	return a.shutdown(code, nil)
}

func (a *Application) shutdown(code ExitCode, err error) ShutdownRequest {
	if a.state == Terminated {
		return ShutdownRequest{Code: code, Err: err}
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	a.platform.Terminate()
	a.state = Terminated
	return ShutdownRequest{Code: code, Err: err}
}
