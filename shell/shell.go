// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell holds the platform-independent core of the desktop
// shell: the application description, the runtime state container, the
// message dispatch loop, window state and geometry types, and the
// error taxonomy. The platform drivers under shell/driver implement
// the native side against these types.
package shell

import (
	"github.com/LawrenceBuckingham/azul/render"
	"github.com/LawrenceBuckingham/azul/resources"
)

// App describes a desktop application before it runs: the opaque
// payload handed back to callbacks, the configuration, any windows to
// open in addition to the root window, the shared caches, and the
// rendering backend.
type App struct {
	Data    any
	Config  Config
	Windows []WindowState
	Images  *resources.ImageCache
	Fonts   *resources.FontCache
	Backend render.Backend
}

// New returns an application description with fresh caches and a
// backend that renders nothing. Callers replace Backend before running
// when they want pixels.
func New(data any, cfg Config) *App {
	return &App{
		Data:    data,
		Config:  cfg,
		Images:  resources.NewImageCache(),
		Fonts:   resources.NewFontCache(),
		Backend: render.NewNullBackend(),
	}
}

// AddWindow queues an extra window to open before the root window.
func (app *App) AddWindow(state WindowState) {
	app.Windows = append(app.Windows, state)
}
