// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package borrow provides a runtime-checked shared cell with
// single-writer-or-multiple-readers semantics. The native window
// procedure can re-enter toolkit code while the event loop already
// holds the application runtime, so the conflict has to be detected
// dynamically and surfaced as a recoverable error rather than a
// deadlock or a crash.
package borrow

import (
	"errors"
	"sync"
)

var (
	// ErrShared is returned when a read borrow is blocked by an
	// active exclusive borrow.
	ErrShared = errors.New("borrow: shared borrow blocked by exclusive borrow")

	// ErrExclusive is returned when an exclusive borrow is blocked by
	// any other active borrow.
	ErrExclusive = errors.New("borrow: exclusive borrow blocked by existing borrow")
)

// Cell holds a value behind dynamic borrow checking. Borrows never
// block: a conflicting borrow fails immediately with [ErrShared] or
// [ErrExclusive]. The zero Cell is not usable; construct with [NewCell].
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewCell returns a Cell owning v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Borrow acquires a shared borrow. On success it returns the value and
// a release function; release must be called exactly once, further
// calls are no-ops.
func (c *Cell[T]) Borrow() (T, func(), error) {
	if !c.mu.TryRLock() {
		var zero T
		return zero, nil, ErrShared
	}
	var once sync.Once
	return c.value, func() { once.Do(c.mu.RUnlock) }, nil
}

// BorrowMut acquires the exclusive borrow. On success it returns the
// value and a release function with the same contract as [Cell.Borrow].
func (c *Cell[T]) BorrowMut() (T, func(), error) {
	if !c.mu.TryLock() {
		var zero T
		return zero, nil, ErrExclusive
	}
	var once sync.Once
	return c.value, func() { once.Do(c.mu.Unlock) }, nil
}

// With runs fn under a shared borrow.
func (c *Cell[T]) With(fn func(T) error) error {
	v, release, err := c.Borrow()
	if err != nil {
		return err
	}
	defer release()
	return fn(v)
}

// WithMut runs fn under the exclusive borrow.
func (c *Cell[T]) WithMut(fn func(T) error) error {
	v, release, err := c.BorrowMut()
	if err != nil {
		return err
	}
	defer release()
	return fn(v)
}
