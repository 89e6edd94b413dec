// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package gl

import "syscall"

// Call invokes the named entry point with the given arguments,
// reporting false without calling anything when the entry point did
// not resolve. Callers must check the bool; a null entry point means
// the feature is absent, not that the table failed to load.
func (f *Functions) Call(name string, args ...uintptr) (uintptr, bool) {
	addr := f.Addr(name)
	if addr == 0 {
		return 0, false
	}
	r1, _, _ := syscall.SyscallN(addr, args...)
	return r1, true
}
