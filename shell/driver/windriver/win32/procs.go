// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

// Package win32 wraps the native entry points the desktop shell needs:
// window class and window management, the message loop, device
// contexts, pixel formats, and the WGL context calls. Every wrapper is
// a thin typed shim over a lazily resolved system procedure.
package win32

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	opengl32 = windows.NewLazySystemDLL("opengl32.dll")

	procRegisterClassW    = user32.NewProc("RegisterClassW")
	procCreateWindowExW   = user32.NewProc("CreateWindowExW")
	procDefWindowProcW    = user32.NewProc("DefWindowProcW")
	procDestroyWindow     = user32.NewProc("DestroyWindow")
	procShowWindow        = user32.NewProc("ShowWindow")
	procGetMessageW       = user32.NewProc("GetMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessageW  = user32.NewProc("DispatchMessageW")
	procPostQuitMessage   = user32.NewProc("PostQuitMessage")
	procGetDC             = user32.NewProc("GetDC")
	procReleaseDC         = user32.NewProc("ReleaseDC")
	procLoadCursorW       = user32.NewProc("LoadCursorW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetTimer          = user32.NewProc("SetTimer")
	procKillTimer         = user32.NewProc("KillTimer")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procCreateMenu        = user32.NewProc("CreateMenu")
	procCreatePopupMenu   = user32.NewProc("CreatePopupMenu")
	procAppendMenuW       = user32.NewProc("AppendMenuW")
	procSetMenu           = user32.NewProc("SetMenu")
	procDestroyMenu       = user32.NewProc("DestroyMenu")

	procChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	procSetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = gdi32.NewProc("SwapBuffers")

	procWglCreateContext  = opengl32.NewProc("wglCreateContext")
	procWglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	procWglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
	procWglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
)

func RegisterClassW(wc *WNDCLASSW) (uint16, error) {
	r, _, err := procRegisterClassW.Call(uintptr(unsafe.Pointer(wc)))
	if r == 0 {
		return 0, err
	}
	return uint16(r), nil
}

func CreateWindowExW(exStyle uint32, className, windowName *uint16, style uint32, x, y, w, h int32, parent, menu, hInstance, param uintptr) (uintptr, error) {
	r, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		parent, menu, hInstance, param)
	if r == 0 {
		return 0, err
	}
	return r, nil
}

func DefWindowProcW(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wParam, lParam)
	return r
}

func DestroyWindow(hwnd uintptr) error {
	r, _, err := procDestroyWindow.Call(hwnd)
	if r == 0 {
		return err
	}
	return nil
}

func ShowWindow(hwnd uintptr, cmd int32) {
	procShowWindow.Call(hwnd, uintptr(cmd))
}

// GetMessageW blocks for the next message for hwnd. Returns 0 for the
// quit notification, negative when the handle is gone or invalid,
// positive otherwise; exactly the native return value.
func GetMessageW(msg *MSG, hwnd uintptr) int32 {
	r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), hwnd, 0, 0)
	return int32(r)
}

func TranslateMessage(msg *MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

func DispatchMessageW(msg *MSG) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

func PostQuitMessage(code int32) {
	procPostQuitMessage.Call(uintptr(code))
}

func GetDC(hwnd uintptr) uintptr {
	r, _, _ := procGetDC.Call(hwnd)
	return r
}

func ReleaseDC(hwnd, hdc uintptr) {
	procReleaseDC.Call(hwnd, hdc)
}

func LoadArrowCursor() uintptr {
	r, _, _ := procLoadCursorW.Call(0, uintptr(IDC_ARROW))
	return r
}

func SetWindowLongPtr(hwnd uintptr, index int32, value uintptr) uintptr {
	r, _, _ := procSetWindowLongPtrW.Call(hwnd, uintptr(index), value)
	return r
}

func GetWindowLongPtr(hwnd uintptr, index int32) uintptr {
	r, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(index))
	return r
}

// SetTimer arms a native timer. For a window timer the returned value
// is nonzero on success; for hwnd 0 it is the system-assigned timer
// identifier needed to kill it.
func SetTimer(hwnd uintptr, id uintptr, intervalMS uint32) (uintptr, error) {
	r, _, err := procSetTimer.Call(hwnd, id, uintptr(intervalMS), 0)
	if r == 0 {
		return 0, err
	}
	return r, nil
}

func KillTimer(hwnd uintptr, id uintptr) {
	procKillTimer.Call(hwnd, id)
}

func SetWindowPos(hwnd, insertAfter uintptr, x, y, w, h int32, flags uint32) {
	procSetWindowPos.Call(hwnd, insertAfter,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h), uintptr(flags))
}

func CreateMenu() uintptr {
	r, _, _ := procCreateMenu.Call()
	return r
}

func CreatePopupMenu() uintptr {
	r, _, _ := procCreatePopupMenu.Call()
	return r
}

func AppendMenuW(menu uintptr, flags uint32, id uintptr, label *uint16) error {
	r, _, err := procAppendMenuW.Call(menu, uintptr(flags), id, uintptr(unsafe.Pointer(label)))
	if r == 0 {
		return err
	}
	return nil
}

// SetMenu attaches the menu bar to a window; the window owns it from
// then on and destroys it with the handle.
func SetMenu(hwnd, menu uintptr) error {
	r, _, err := procSetMenu.Call(hwnd, menu)
	if r == 0 {
		return err
	}
	return nil
}

// DestroyMenu frees a menu that was never attached to a window.
func DestroyMenu(menu uintptr) {
	procDestroyMenu.Call(menu)
}

func ChoosePixelFormat(hdc uintptr, pfd *PIXELFORMATDESCRIPTOR) int32 {
	r, _, _ := procChoosePixelFormat.Call(hdc, uintptr(unsafe.Pointer(pfd)))
	return int32(r)
}

func SetPixelFormat(hdc uintptr, format int32, pfd *PIXELFORMATDESCRIPTOR) error {
	r, _, err := procSetPixelFormat.Call(hdc, uintptr(format), uintptr(unsafe.Pointer(pfd)))
	if r == 0 {
		return err
	}
	return nil
}

func SwapBuffers(hdc uintptr) {
	procSwapBuffers.Call(hdc)
}

func WglCreateContext(hdc uintptr) (uintptr, error) {
	r, _, err := procWglCreateContext.Call(hdc)
	if r == 0 {
		return 0, err
	}
	return r, nil
}

func WglDeleteContext(hglrc uintptr) {
	procWglDeleteContext.Call(hglrc)
}

func WglMakeCurrent(hdc, hglrc uintptr) error {
	r, _, err := procWglMakeCurrent.Call(hdc, hglrc)
	if r == 0 {
		return err
	}
	return nil
}

// WglGetProcAddress resolves a context-local symbol. Zero means the
// current context does not provide it.
func WglGetProcAddress(name string) uintptr {
	b, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(b)))
	return r
}

// ErrCode extracts the native error code from a wrapper error, for
// logging alongside the failed operation.
func ErrCode(err error) uint32 {
	if errno, ok := err.(syscall.Errno); ok {
		return uint32(errno)
	}
	return 0
}
