// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"log/slog"

	"github.com/LawrenceBuckingham/azul/base/ordmap"
	"github.com/LawrenceBuckingham/azul/gl"
	"github.com/LawrenceBuckingham/azul/resources"
)

// WindowID is the stable per-window identity used as the runtime's map
// key. On Windows it is the native window handle.
type WindowID uintptr

// Runtime owns everything that outlives any single window: the
// application payload, configuration, shared caches, the resolved
// graphics function table, and the window/timer/thread registries. The
// platform driver instantiates it with its own window type and wraps
// it in a borrow-checked cell shared between the event loop and the
// native callback re-entry path.
//
// Registries use insertion-ordered maps so iteration order is
// deterministic; the graphics-context election in particular depends
// on it.
type Runtime[W any] struct {
	// HInstance is the process module handle. Valid for the process
	// lifetime once obtained.
	HInstance uintptr

	// Data is the embedding caller's payload, passed through to timer
	// callbacks and layout construction untouched.
	Data any

	Config Config
	Images *resources.ImageCache
	Fonts  *resources.FontCache

	// GL is the shared graphics function table. All-null until one
	// window's context performs the one-time load; all-null forever in
	// a pure software run.
	GL *gl.Functions

	Windows ordmap.Map[WindowID, W]
	Timers  ordmap.Map[TimerID, *Timer]
	Threads ordmap.Map[ThreadID, *Thread]
}

// NewRuntime returns a runtime with empty registries, an unloaded
// function table, and fresh caches for any the caller left nil.
func NewRuntime[W any](hinstance uintptr, data any, cfg Config, images *resources.ImageCache, fonts *resources.FontCache) *Runtime[W] {
	if images == nil {
		images = resources.NewImageCache()
	}
	if fonts == nil {
		fonts = resources.NewFontCache()
	}
	return &Runtime[W]{
		HInstance: hinstance,
		Data:      data,
		Config:    cfg,
		Images:    images,
		Fonts:     fonts,
		GL:        gl.New(),
	}
}

// AddWindow registers a window under its identity.
func (rt *Runtime[W]) AddWindow(id WindowID, w W) {
	rt.Windows.Add(id, w)
}

// RemoveWindow drops a window from the registry. Reports whether an
// entry existed.
func (rt *Runtime[W]) RemoveWindow(id WindowID) bool {
	return rt.Windows.DeleteKey(id)
}

// CreateAll runs the startup creation sweep: every requested
// configuration, then the root window, always last. A creation failure
// is logged and that window dropped; siblings and startup proceed.
// Successful windows are registered in creation order.
func (rt *Runtime[W]) CreateAll(extra []WindowState, root WindowState, create func(WindowState) (WindowID, W, error)) {
	configs := append(append([]WindowState{}, extra...), root)
	for _, state := range configs {
		id, w, err := create(state)
		if err != nil {
			slog.Warn("shell: window creation failed", "title", state.Title, "err", err)
			continue
		}
		rt.AddWindow(id, w)
	}
}

// WindowIDs returns the current snapshot of registered window
// identities in insertion order.
func (rt *Runtime[W]) WindowIDs() []WindowID {
	return rt.Windows.Keys()
}

// NumWindows returns the number of live windows.
func (rt *Runtime[W]) NumWindows() int { return rt.Windows.Len() }

// AddTimer registers a timer under the given identity, replacing any
// previous timer with that identity.
func (rt *Runtime[W]) AddTimer(id TimerID, t *Timer) {
	rt.Timers.Add(id, t)
}

// RemoveTimer drops a timer from the registry.
func (rt *Runtime[W]) RemoveTimer(id TimerID) {
	rt.Timers.DeleteKey(id)
}

// FireTimer invokes the timer's callback with the application payload
// and unregisters it if the callback terminates it. Reports whether a
// timer with that identity existed.
func (rt *Runtime[W]) FireTimer(id TimerID) bool {
	t, ok := rt.Timers.ValueByKeyTry(id)
	if !ok {
		return false
	}
	if t.Tick != nil && t.Tick(rt.Data) == TimerTerminate {
		rt.Timers.DeleteKey(id)
	}
	return true
}

// TrackThread registers a background thread for teardown joining.
func (rt *Runtime[W]) TrackThread(t *Thread) {
	rt.Threads.Add(t.ID(), t)
}

// JoinThreads waits for every tracked thread and clears the registry.
func (rt *Runtime[W]) JoinThreads() {
	for _, t := range rt.Threads.Values() {
		t.Join()
	}
	rt.Threads.Reset()
}
