// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Library is a dynamically loaded system library. It is the sole owner
// of the native handle; Release frees it exactly once.
type Library struct {
	name   string
	handle windows.Handle
}

// OpenLibrary loads the named system library. Only system directories
// are searched.
func OpenLibrary(name string) (*Library, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, fmt.Errorf("win32: loading %s: %w", name, err)
	}
	return &Library{name: name, handle: h}, nil
}

// Name returns the library's file name.
func (l *Library) Name() string { return l.name }

// Resolve returns the address of the named export, or zero when the
// library does not provide it. An unknown symbol is absence, never an
// error.
func (l *Library) Resolve(symbol string) uintptr {
	if l == nil || l.handle == 0 {
		return 0
	}
	addr, err := windows.GetProcAddress(l.handle, symbol)
	if err != nil {
		return 0
	}
	return addr
}

// Release frees the library handle. Further calls are no-ops, and
// Resolve returns zero for every symbol afterwards.
func (l *Library) Release() {
	if l == nil || l.handle == 0 {
		return
	}
	windows.FreeLibrary(l.handle)
	l.handle = 0
}
