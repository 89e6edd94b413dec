// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option implements the tagged optional value used across the
// toolkit's foreign interface. A single generic [Option] replaces the
// per-type wrappers of the C ABI surface: every concrete type gets the
// same Present/Absent semantics, borrowing accessors, and conversions
// to and from Go's native (value, ok) form.
package option

import "fmt"

// Option is a two-variant value: present with a T, or absent.
// The zero value is absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From converts a native (value, ok) pair into an Option.
// From(o.Get()) reproduces o for any Option o.
func From[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Some(v)
}

// FromPtr is the duplicating conversion from a pointer-shaped native
// optional: nil becomes absent, otherwise the pointed-to value is copied.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is absent. Always equal to !IsSome().
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get converts to the native (value, ok) form, copying the value.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Or returns the contained value, or def when absent.
func (o Option[T]) Or(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// AsOption borrows the contained value without transferring ownership:
// the returned pointer aliases the Option's storage and is nil iff the
// Option is absent. Mutations through it are visible in the Option.
func (o *Option[T]) AsOption() *T {
	if !o.some {
		return nil
	}
	return &o.value
}

// Set stores v, making the Option present.
func (o *Option[T]) Set(v T) {
	o.value = v
	o.some = true
}

// Take is the value-taking conversion for move-only payloads: it returns
// the contained value and leaves the Option absent. Taking from an absent
// Option returns the zero T and false.
func (o *Option[T]) Take() (T, bool) {
	v, ok := o.value, o.some
	var zero T
	o.value = zero
	o.some = false
	return v, ok
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Cloner is the capability for payloads that support cheap duplication.
type Cloner[T any] interface {
	Clone() T
}

// Cloned is the duplicating conversion: it returns an independent Option
// holding a clone of the contained value, leaving o untouched.
func Cloned[T Cloner[T]](o Option[T]) Option[T] {
	if o.IsNone() {
		return None[T]()
	}
	v, _ := o.Get()
	return Some(v.Clone())
}
