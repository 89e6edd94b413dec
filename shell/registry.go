// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "sync"

// HandleRegistry hands out opaque integer tokens for values that must
// cross the native callback boundary, where a raw pointer cannot be
// stored. The platform driver attaches the token as window user data
// at creation and reclaims it when the native handle is destroyed;
// anything left unreclaimed is an intentional leak scoped to the
// window lifetime.
type HandleRegistry[T any] struct {
	mu   sync.Mutex
	next uintptr
	vals map[uintptr]T
}

// Attach stores v and returns its token. Tokens are never zero and
// never reused within a process run.
func (r *HandleRegistry[T]) Attach(v T) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vals == nil {
		r.vals = make(map[uintptr]T)
	}
	r.next++
	r.vals[r.next] = v
	return r.next
}

// Lookup resolves a token. A zero or reclaimed token yields false.
func (r *HandleRegistry[T]) Lookup(token uintptr) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vals[token]
	return v, ok
}

// Reclaim removes the token, reporting whether it was live. Reclaiming
// twice is safe and returns false the second time.
func (r *HandleRegistry[T]) Reclaim(token uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vals[token]; !ok {
		return false
	}
	delete(r.vals, token)
	return true
}

// Len returns the number of live tokens.
func (r *HandleRegistry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vals)
}
