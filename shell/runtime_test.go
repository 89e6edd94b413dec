// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow stands in for the driver's window type. The invariant
// under test: a graphics context implies a renderer.
type fakeWindow struct {
	title       string
	hasContext  bool
	hasRenderer bool
}

func (w *fakeWindow) invariantHolds() bool {
	return !w.hasContext || w.hasRenderer
}

func TestRuntimeWindowRegistry(t *testing.T) {
	rt := NewRuntime[*fakeWindow](1, nil, DefaultConfig(), nil, nil)
	assert.Zero(t, rt.NumWindows())
	assert.NotNil(t, rt.Images)
	assert.NotNil(t, rt.Fonts)
	assert.NotNil(t, rt.GL)
	assert.Zero(t, rt.GL.NumResolved())

	rt.AddWindow(10, &fakeWindow{title: "a"})
	rt.AddWindow(20, &fakeWindow{title: "b"})
	rt.AddWindow(30, &fakeWindow{title: "root"})
	assert.Equal(t, []WindowID{10, 20, 30}, rt.WindowIDs(), "insertion order is the iteration order")

	assert.True(t, rt.RemoveWindow(20))
	assert.False(t, rt.RemoveWindow(20))
	assert.Equal(t, []WindowID{10, 30}, rt.WindowIDs())
}

func TestRuntimePartialCreation(t *testing.T) {
	// Two extra windows plus the root, one extra fails to allocate:
	// the sweep drops only the failed window and the registry ends up
	// with exactly the two that succeeded, root last.
	rt := NewRuntime[*fakeWindow](1, nil, DefaultConfig(), nil, nil)

	extraOK := DefaultWindowState()
	extraOK.Title = "extra-ok"
	extraFails := DefaultWindowState()
	extraFails.Title = "extra-fails"
	root := DefaultWindowState()
	root.Title = "root"

	var attempted []string
	next := WindowID(100)
	rt.CreateAll([]WindowState{extraOK, extraFails}, root, func(state WindowState) (WindowID, *fakeWindow, error) {
		attempted = append(attempted, state.Title)
		if state.Title == "extra-fails" {
			return 0, nil, &WindowCreateError{Title: state.Title, Code: 1400}
		}
		next++
		return next, &fakeWindow{title: state.Title, hasRenderer: true}, nil
	})

	assert.Equal(t, []string{"extra-ok", "extra-fails", "root"}, attempted, "root is always attempted last")
	require.Equal(t, 2, rt.NumWindows())
	titles := make([]string, 0, 2)
	for _, w := range rt.Windows.Values() {
		assert.True(t, w.invariantHolds())
		titles = append(titles, w.title)
	}
	assert.Equal(t, []string{"extra-ok", "root"}, titles)
}

func TestRuntimeCreateAllEmpty(t *testing.T) {
	// A root that fails leaves the runtime empty; the dispatch loop
	// treats that as immediate exit, not an error.
	rt := NewRuntime[*fakeWindow](1, nil, DefaultConfig(), nil, nil)
	rt.CreateAll(nil, DefaultWindowState(), func(state WindowState) (WindowID, *fakeWindow, error) {
		return 0, nil, &WindowCreateError{Title: state.Title}
	})
	assert.Zero(t, rt.NumWindows())
}

func TestRuntimeContextImpliesRenderer(t *testing.T) {
	rt := NewRuntime[*fakeWindow](1, nil, DefaultConfig(), nil, nil)
	rt.AddWindow(1, &fakeWindow{hasContext: true, hasRenderer: true})
	rt.AddWindow(2, &fakeWindow{})
	for _, w := range rt.Windows.Values() {
		assert.True(t, w.invariantHolds())
	}
}

func TestRuntimeTimers(t *testing.T) {
	rt := NewRuntime[*fakeWindow](1, "payload", DefaultConfig(), nil, nil)

	var got any
	ticks := 0
	rt.AddTimer(5, &Timer{
		Interval: 10 * time.Millisecond,
		Tick: func(data any) TimerAction {
			got = data
			ticks++
			if ticks == 2 {
				return TimerTerminate
			}
			return TimerContinue
		},
	})

	assert.True(t, rt.FireTimer(5))
	assert.Equal(t, "payload", got)
	assert.True(t, rt.Timers.HasKey(5))

	assert.True(t, rt.FireTimer(5))
	assert.False(t, rt.Timers.HasKey(5), "terminated timer is unregistered")
	assert.False(t, rt.FireTimer(5))
}

func TestRuntimeThreads(t *testing.T) {
	rt := NewRuntime[*fakeWindow](1, nil, DefaultConfig(), nil, nil)
	ch := make(chan int, 2)
	rt.TrackThread(SpawnThread(func() { ch <- 1 }))
	rt.TrackThread(SpawnThread(func() { ch <- 2 }))
	assert.Equal(t, 2, rt.Threads.Len())

	rt.JoinThreads()
	assert.Zero(t, rt.Threads.Len())
	assert.Len(t, ch, 2)
}

func TestThreadJoinIdempotent(t *testing.T) {
	th := SpawnThread(func() {})
	th.Join()
	th.Join()
	assert.True(t, th.Done())
	assert.NotZero(t, th.ID())
}
