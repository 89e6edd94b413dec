// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"log/slog"
	"syscall"
	"unsafe"

	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

// wndProcPtr is the callback registered with the window class. One
// per process; NewCallback allocations are never released.
var wndProcPtr = syscall.NewCallback(wndProc)

// lookupApp recovers the shared handle from the token stashed in the
// window's user data. Zero or stale tokens yield nil.
func lookupApp(hwnd uintptr) *sharedApp {
	token := win32.GetWindowLongPtr(hwnd, win32.GWLP_USERDATA)
	if token == 0 {
		return nil
	}
	sa, ok := appRegistry.Lookup(token)
	if !ok {
		return nil
	}
	return sa
}

func wndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win32.WM_NCCREATE:
		// The creation token arrives through lpCreateParams; stash it
		// in the user data so every later message can recover the
		// shared handle.
		cs := (*win32.CREATESTRUCTW)(unsafe.Pointer(lParam))
		win32.SetWindowLongPtr(hwnd, win32.GWLP_USERDATA, cs.CreateParams)
		return win32.DefWindowProcW(hwnd, msg, wParam, lParam)

	case win32.WM_ERASEBKGND:
		return 1

	case win32.WM_PAINT:
		sa := lookupApp(hwnd)
		if sa != nil {
			err := sa.withMut(func(data *appData) error {
				if w, ok := data.Windows.ValueByKeyTry(shell.WindowID(hwnd)); ok {
					w.paint()
				}
				return nil
			})
			if err != nil {
				slog.Warn("wndproc: paint skipped", "err", err)
			}
		}
		// DefWindowProc validates the update region so the message is
		// not redelivered immediately.
		return win32.DefWindowProcW(hwnd, msg, wParam, lParam)

	case win32.WM_SIZE:
		sa := lookupApp(hwnd)
		if sa == nil {
			return 0
		}
		width := uint32(lParam & 0xFFFF)
		height := uint32((lParam >> 16) & 0xFFFF)
		err := sa.withMut(func(data *appData) error {
			if w, ok := data.Windows.ValueByKeyTry(shell.WindowID(hwnd)); ok {
				factor := w.State.Size.DPIFactor()
				w.State.Size.Dimensions = shell.PhysicalSize{Width: width, Height: height}.ToLogical(factor)
			}
			return nil
		})
		if err != nil {
			slog.Warn("wndproc: resize snapshot skipped", "err", err)
		}
		return 0

	case win32.WM_DPICHANGED:
		sa := lookupApp(hwnd)
		if sa == nil {
			return 0
		}
		newDPI := uint32(wParam & 0xFFFF)
		err := sa.withMut(func(data *appData) error {
			if w, ok := data.Windows.ValueByKeyTry(shell.WindowID(hwnd)); ok {
				w.State.Size.DPI = newDPI
			}
			return nil
		})
		if err != nil {
			slog.Warn("wndproc: dpi change skipped", "err", err)
		}
		// The suggested rect keeps the window the same physical size
		// on the new monitor.
		if rc := (*win32.RECT)(unsafe.Pointer(lParam)); rc != nil {
			win32.SetWindowPos(hwnd, 0, rc.Left, rc.Top,
				rc.Right-rc.Left, rc.Bottom-rc.Top,
				win32.SWP_NOZORDER|win32.SWP_NOACTIVATE)
		}
		return 0

	case win32.WM_TIMER:
		sa := lookupApp(hwnd)
		if sa == nil {
			return 0
		}
		id := shell.TimerID(wParam)
		err := sa.withMut(func(data *appData) error {
			data.FireTimer(id)
			if !data.Timers.HasKey(id) {
				win32.KillTimer(hwnd, uintptr(id))
			}
			return nil
		})
		if err != nil {
			slog.Warn("wndproc: timer tick skipped", "err", err)
		}
		return 0

	case win32.WM_CLOSE:
		win32.DestroyWindow(hwnd)
		return 0

	case win32.WM_DESTROY:
		sa := lookupApp(hwnd)
		if sa == nil {
			return 0
		}
		err := sa.withMut(func(data *appData) error {
			id := shell.WindowID(hwnd)
			if w, ok := data.Windows.ValueByKeyTry(id); ok {
				w.destroyCollaborators()
				data.RemoveWindow(id)
			}
			if data.NumWindows() == 0 {
				win32.PostQuitMessage(0)
			}
			return nil
		})
		if err != nil {
			slog.Warn("wndproc: window teardown skipped", "err", err)
		}
		return 0

	case win32.WM_NCDESTROY:
		// Last message the handle will ever receive: reclaim the
		// user-data token so the registry does not leak it.
		token := win32.GetWindowLongPtr(hwnd, win32.GWLP_USERDATA)
		if token != 0 {
			appRegistry.Reclaim(token)
			win32.SetWindowLongPtr(hwnd, win32.GWLP_USERDATA, 0)
		}
		return win32.DefWindowProcW(hwnd, msg, wParam, lParam)
	}

	return win32.DefWindowProcW(hwnd, msg, wParam, lParam)
}
