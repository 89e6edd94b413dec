// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"sync/atomic"
	"time"
)

// TimerID identifies a timer in the runtime's registry. On Windows it
// doubles as the native timer identifier.
type TimerID uintptr

// TimerAction is a timer callback's verdict.
type TimerAction int32

const (
	// TimerContinue keeps the timer registered.
	TimerContinue TimerAction = iota
	// TimerTerminate removes the timer after this tick.
	TimerTerminate
)

// Timer is a UI-thread callback fired at a fixed interval. Ticks are
// delivered through the native message loop, never concurrently.
type Timer struct {
	Interval time.Duration

	// Tick receives the application payload. Returning
	// [TimerTerminate] unregisters the timer.
	Tick func(data any) TimerAction
}

// ThreadID identifies a background thread in the runtime's registry.
type ThreadID uint64

var nextThreadID atomic.Uint64

// Thread is a background goroutine tracked by the runtime so the shell
// can wait for it during teardown. It carries no cancellation; the
// work function owns its own stopping condition.
type Thread struct {
	id   ThreadID
	done chan struct{}
}

// SpawnThread starts fn on its own goroutine and returns its handle.
func SpawnThread(fn func()) *Thread {
	t := &Thread{
		id:   ThreadID(nextThreadID.Add(1)),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		fn()
	}()
	return t
}

// ID returns the registry key for this thread.
func (t *Thread) ID() ThreadID { return t.id }

// Join blocks until the thread's work function returns. Safe to call
// more than once.
func (t *Thread) Join() {
	<-t.done
}

// Done reports without blocking whether the work function returned.
func (t *Thread) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
