// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app connects the UI shell, the one-time renderer setup,
// and the frame driver.
package app

import (
	"log/slog"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/frame"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/ui"
)

// Host provides the platform pieces the app needs.
type Host struct {

	// Canvas looks up the mounted canvas element.
	Canvas func() (render.Canvas, error)

	// Frames creates the host frame source.
	Frames frame.NewHostFunc
}

// App is the spincube application.
type App struct {
	Config  *config.Config
	Options render.Options
	Shell   *ui.Shell

	// Init guards the renderer setup; it is created once with the app.
	Init *render.Initializer

	host   Host
	driver *frame.Driver
}

// New returns a new [App] for the given configuration and host.
// It wires the canvas mount signal to [App.Start].
func New(cfg *config.Config, host Host) (*App, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:  cfg,
		Options: opts,
		Shell:   ui.NewShell(opts.Width, opts.Height),
		Init:    render.NewInitializer(opts),
		host:    host,
	}
	a.Shell.Mounted.Effect(func(mounted bool) {
		if mounted {
			a.Start()
		}
	})
	return a, nil
}

// Start sets up the renderer and starts the animation. Only the first
// call does anything; failures are logged and leave the canvas static.
func (a *App) Start() {
	if a.Init.Started() {
		slog.Debug("ignoring repeated mount signal")
		return
	}
	c, err := a.host.Canvas()
	if errors.Log(err) != nil {
		return
	}
	sc, err := a.Init.Init(c)
	if errors.Is(err, render.ErrAlreadyInitialized) {
		return
	}
	if errors.Log(err) != nil {
		return
	}
	d := frame.NewDriver(render.NewAnimator(sc, a.Options))
	if errors.Log(d.Start(a.host.Frames)) != nil {
		return
	}
	a.driver = d
	slog.Info("animation started")
}

// Driver returns the frame driver, or nil if the animation has not started.
func (a *App) Driver() *frame.Driver {
	return a.driver
}

// Stop stops the animation, if it is running.
func (a *App) Stop() {
	if a.driver != nil {
		a.driver.Stop()
	}
}
