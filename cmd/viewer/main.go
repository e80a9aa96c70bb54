package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"level-viewer/internal/app"
	"level-viewer/internal/debug"
	"level-viewer/internal/demo"
	"level-viewer/internal/logger"
	"level-viewer/internal/viewerconfig"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	log := logger.New(os.Stderr)

	prefs, err := viewerconfig.Load()
	if err != nil {
		log.WithError(err).Warn("using default viewer config")
	}
	if err := log.SetLevelName(prefs.LogLevel); err != nil {
		log.WithError(err).Warn("keeping info log level")
	}
	if prefs.LogFile != "" {
		if err := log.AppendToFile(prefs.LogFile); err != nil {
			log.WithError(err).Warn("log file disabled")
		}
	}
	winCfg, err := prefs.WindowConfig()
	if err != nil {
		log.WithError(err).Warn("using default window")
	}

	platform, painter := newPlatform()
	log.WithField("backend", backend).Debug("graphics platform")

	viewer := app.New(platform,
		app.WithLogger(log),
		app.WithWindowConfig(winCfg),
		app.WithClearColor(prefs.ClearColor()),
		app.WithSwapInterval(prefs.Window.SwapInterval),
	)

	viewer.AddManager(demo.NewHelloTriangle(painter))
	if prefs.ShowFPS || prefs.ShowMemAlloc {
		stats := debug.New(log)
		stats.SetShowFPS(prefs.ShowFPS)
		stats.SetShowMemAlloc(prefs.ShowMemAlloc)
		stats.Interval = prefs.StatsInterval
		viewer.AddManager(stats)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// Init must come last: it opens the window and blocks in the frame loop until close.
	req := viewer.InitContext(ctx)
	stop()

	if !req.OK() {
		log.WithError(req.Err).WithField("code", req.Code).Error("viewer exited with failure")
	}
	os.Exit(int(req.Code))
}
