// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"syscall"
	"unsafe"

	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

// DwmFunctions is the optional compositor-extension table. A nil table
// or a zero entry means the effect is skipped; absence is never an
// error.
type DwmFunctions struct {
	lib *win32.Library

	enableBlurBehind uintptr // DwmEnableBlurBehindWindow
	extendFrame      uintptr // DwmExtendFrameIntoClientArea
	flush            uintptr // DwmFlush
}

// loadDwm resolves the compositor extensions, returning nil when the
// library itself is missing.
func loadDwm() *DwmFunctions {
	lib, err := win32.OpenLibrary("dwmapi.dll")
	if err != nil {
		return nil
	}
	return &DwmFunctions{
		lib:              lib,
		enableBlurBehind: lib.Resolve("DwmEnableBlurBehindWindow"),
		extendFrame:      lib.Resolve("DwmExtendFrameIntoClientArea"),
		flush:            lib.Resolve("DwmFlush"),
	}
}

// EnableBlurBehind turns the blur-behind effect on for a window.
func (d *DwmFunctions) EnableBlurBehind(hwnd uintptr) {
	if d == nil || d.enableBlurBehind == 0 {
		return
	}
	bb := win32.DWM_BLURBEHIND{Flags: win32.DWM_BB_ENABLE, Enable: 1}
	syscall.SyscallN(d.enableBlurBehind, hwnd, uintptr(unsafe.Pointer(&bb)))
}

// ExtendFrame extends the window frame into the client area by the
// given margins.
func (d *DwmFunctions) ExtendFrame(hwnd uintptr, m win32.MARGINS) {
	if d == nil || d.extendFrame == 0 {
		return
	}
	syscall.SyscallN(d.extendFrame, hwnd, uintptr(unsafe.Pointer(&m)))
}

// Flush waits for the compositor to finish the pending frame.
func (d *DwmFunctions) Flush() {
	if d == nil || d.flush == 0 {
		return
	}
	syscall.SyscallN(d.flush)
}

// Release frees the underlying library.
func (d *DwmFunctions) Release() {
	if d == nil {
		return
	}
	d.lib.Release()
	d.enableBlurBehind = 0
	d.extendFrame = 0
	d.flush = 0
}
