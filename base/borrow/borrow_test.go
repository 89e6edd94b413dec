// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package borrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBorrows(t *testing.T) {
	c := NewCell(map[string]int{"a": 1})

	v1, rel1, err := c.Borrow()
	require.NoError(t, err)
	v2, rel2, err := c.Borrow()
	require.NoError(t, err)
	assert.Equal(t, 1, v1["a"])
	assert.Equal(t, 1, v2["a"])

	// A writer must be rejected while readers are active.
	_, _, err = c.BorrowMut()
	assert.ErrorIs(t, err, ErrExclusive)

	rel1()
	rel2()

	_, rel, err := c.BorrowMut()
	require.NoError(t, err)
	rel()
}

func TestExclusiveBlocksAll(t *testing.T) {
	c := NewCell(42)

	_, rel, err := c.BorrowMut()
	require.NoError(t, err)

	_, _, err = c.Borrow()
	assert.ErrorIs(t, err, ErrShared)
	_, _, err = c.BorrowMut()
	assert.ErrorIs(t, err, ErrExclusive)

	rel()
	_, rel2, err := c.Borrow()
	require.NoError(t, err)
	rel2()
}

func TestReleaseIdempotent(t *testing.T) {
	c := NewCell("x")
	_, rel, err := c.BorrowMut()
	require.NoError(t, err)
	rel()
	rel() // second release must be a no-op, not an unlock of somebody else

	_, rel2, err := c.BorrowMut()
	require.NoError(t, err)
	rel2()
}

func TestWithMutConflictIsRecoverable(t *testing.T) {
	c := NewCell([]int{1})

	err := c.With(func(v []int) error {
		// Re-entry while a shared borrow is live, as the window
		// procedure does while the loop body reads the runtime.
		return c.WithMut(func([]int) error { return nil })
	})
	assert.ErrorIs(t, err, ErrExclusive)

	// The cell stays usable afterwards.
	assert.NoError(t, c.WithMut(func(v []int) error { return nil }))
}
