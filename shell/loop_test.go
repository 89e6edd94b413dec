// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LawrenceBuckingham/azul/base/borrow"
)

func TestDispatchLoopEmptySet(t *testing.T) {
	polled := 0
	err := DispatchLoop(
		func() ([]WindowID, error) { return nil, nil },
		func(WindowID) PollStatus { polled++; return 1 },
	)
	require.NoError(t, err)
	assert.Zero(t, polled, "no messages may be dispatched for an empty window set")
}

func TestDispatchLoopQuitEndsSweep(t *testing.T) {
	// Three windows; the second reports its message source gone. The
	// whole sweep still polls every window once, then the loop ends.
	polled := map[WindowID]int{}
	err := DispatchLoop(
		func() ([]WindowID, error) { return []WindowID{1, 2, 3}, nil },
		func(id WindowID) PollStatus {
			polled[id]++
			if id == 2 {
				return 0
			}
			return 1
		},
	)
	require.NoError(t, err)
	assert.Equal(t, map[WindowID]int{1: 1, 2: 1, 3: 1}, polled)
}

func TestDispatchLoopErrorStatus(t *testing.T) {
	sweeps := 0
	err := DispatchLoop(
		func() ([]WindowID, error) { sweeps++; return []WindowID{7}, nil },
		func(WindowID) PollStatus {
			if sweeps < 3 {
				return 1
			}
			return -1
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, sweeps)
}

func TestDispatchLoopResnapshotsEachSweep(t *testing.T) {
	// Windows disappear between sweeps; the loop must see the new set.
	sets := [][]WindowID{{1, 2}, {2}, {}}
	i := 0
	var seen []WindowID
	err := DispatchLoop(
		func() ([]WindowID, error) {
			s := sets[i]
			i++
			return s, nil
		},
		func(id WindowID) PollStatus { seen = append(seen, id); return 1 },
	)
	require.NoError(t, err)
	assert.Equal(t, []WindowID{1, 2, 2}, seen)
}

func TestDispatchLoopSnapshotConflictTerminates(t *testing.T) {
	// A borrow conflict while snapshotting the runtime ends the loop
	// and is surfaced to the caller.
	cell := borrow.NewCell(map[WindowID]struct{}{1: {}})
	_, release, err := cell.BorrowMut()
	require.NoError(t, err)
	defer release()

	polled := 0
	err = DispatchLoop(
		func() ([]WindowID, error) {
			m, rel, err := cell.Borrow()
			if err != nil {
				return nil, err
			}
			defer rel()
			ids := make([]WindowID, 0, len(m))
			for id := range m {
				ids = append(ids, id)
			}
			return ids, nil
		},
		func(WindowID) PollStatus { polled++; return 1 },
	)
	require.ErrorIs(t, err, borrow.ErrShared)
	assert.Zero(t, polled)
}

func TestPollStatusTerminal(t *testing.T) {
	assert.True(t, PollStatus(0).Terminal())
	assert.True(t, PollStatus(-1).Terminal())
	assert.False(t, PollStatus(1).Terminal())
}
