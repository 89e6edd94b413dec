// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl holds the process-wide OpenGL function table. Entry
// points are resolved once, after a graphics context has been made
// current, and shared read-only across every window for the life of
// the process. A run without any hardware window never loads the
// table; all entries stay null and that is a valid state.
package gl

// ResolveFunc looks up the address of a named entry point, returning 0
// when the source does not export it.
type ResolveFunc func(name string) uintptr

// Functions maps entry-point names to resolved addresses. It is
// immutable once built: construct the unloaded table with [New] and
// replace it wholesale with the result of [Load]. A zero address means
// the entry point is unavailable and must not be called.
type Functions struct {
	addrs map[string]uintptr
}

// New returns the unloaded table: every symbol present, every address
// null. Used until (and unless) a graphics context becomes available.
func New() *Functions {
	f := &Functions{addrs: make(map[string]uintptr, len(Symbols))}
	for _, name := range Symbols {
		f.addrs[name] = 0
	}
	return f
}

// Load resolves every name in [Symbols] against the given resolvers in
// order, taking the first non-null address. A symbol all resolvers
// miss is stored as null; that is not an error. Load never fails.
//
// The first resolver is normally the context-specific query of the
// currently bound graphics context, the second the export table of the
// statically loaded graphics library; the context query can return
// context-local addresses the export table does not have.
func Load(resolvers ...ResolveFunc) *Functions {
	f := &Functions{addrs: make(map[string]uintptr, len(Symbols))}
	for _, name := range Symbols {
		var addr uintptr
		for _, resolve := range resolvers {
			if resolve == nil {
				continue
			}
			if addr = resolve(name); addr != 0 {
				break
			}
		}
		f.addrs[name] = addr
	}
	return f
}

// Addr returns the resolved address of the named entry point, 0 if it
// is unavailable or unknown.
func (f *Functions) Addr(name string) uintptr {
	if f == nil {
		return 0
	}
	return f.addrs[name]
}

// Has reports whether the named entry point resolved to a callable
// address.
func (f *Functions) Has(name string) bool {
	return f.Addr(name) != 0
}

// NumResolved returns how many entry points carry a non-null address.
// The unloaded table reports 0.
func (f *Functions) NumResolved() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, a := range f.addrs {
		if a != 0 {
			n++
		}
	}
	return n
}
