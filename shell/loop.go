// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

// PollStatus is the per-window result of retrieving and dispatching
// one native message. Positive means a message was handled; zero means
// the window's message source delivered its quit notification;
// negative means retrieval failed. On Windows these are exactly the
// return values of GetMessageW.
type PollStatus int32

// Terminal reports whether this status ends the dispatch loop.
func (s PollStatus) Terminal() bool { return s <= 0 }

// DispatchLoop runs the single-threaded multi-window message loop.
//
// Each sweep it takes a fresh snapshot of window identities (windows
// are created and destroyed as a side effect of dispatch), polls each
// window once for a message, and collects one status per window
// polled. The loop ends when the snapshot is empty, when any collected
// status is terminal, or when snapshot itself fails (a borrow conflict
// on the shared runtime means continuing is unsafe).
//
// poll blocks until the window has a message; that is acceptable
// because each window is polled once per sweep, not continuously.
// DispatchLoop returns the snapshot error if one ended the loop, nil
// otherwise.
func DispatchLoop(snapshot func() ([]WindowID, error), poll func(WindowID) PollStatus) error {
	statuses := make([]PollStatus, 0, 8)
	for {
		ids, err := snapshot()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		statuses = statuses[:0]
		for _, id := range ids {
			statuses = append(statuses, poll(id))
		}
		for _, s := range statuses {
			if s.Terminal() {
				return nil
			}
		}
	}
}
