// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package windriver is the Windows implementation of the desktop
// shell: native window lifecycle, the message loop, WGL context setup,
// and the one-time graphics function-table load.
package windriver

import (
	"sync/atomic"

	"github.com/LawrenceBuckingham/azul/base/borrow"
	"github.com/LawrenceBuckingham/azul/render"
	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

// appData is everything shared between the event loop and the window
// procedure: the runtime plus the driver-level singletons.
type appData struct {
	*shell.Runtime[*Window]

	Backend render.Backend

	// Dwm is nil when the compositor library is missing.
	Dwm *DwmFunctions

	// GLLib is the statically loaded graphics library, the fallback
	// source for symbol resolution. Nil in a software-only run.
	GLLib *win32.Library
}

// sharedApp is the borrow-checked handle to appData. The event loop
// and the window-procedure re-entry path both hold one; conflicts are
// detected at runtime and surfaced as recoverable errors.
type sharedApp struct {
	cell *borrow.Cell[*appData]
}

func newSharedApp(data *appData) *sharedApp {
	return &sharedApp{cell: borrow.NewCell(data)}
}

func (sa *sharedApp) with(fn func(*appData) error) error {
	return sa.cell.With(fn)
}

func (sa *sharedApp) withMut(fn func(*appData) error) error {
	return sa.cell.WithMut(fn)
}

// appRegistry resolves window user-data tokens back to the shared
// handle inside the window procedure.
var appRegistry shell.HandleRegistry[*sharedApp]

var nextDocNamespace atomic.Uint32

// newDocumentID mints a process-unique render document identity.
func newDocumentID() render.DocumentID {
	return render.DocumentID{Namespace: nextDocNamespace.Add(1)}
}

// Monitors lists the attached displays. Enumeration is not wired up
// yet; callers treat an empty list as unknown.
func Monitors() []shell.Monitor {
	return nil
}
