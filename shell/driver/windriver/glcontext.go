// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"unsafe"

	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

// createGLContext negotiates a pixel format on the window's device
// context and creates a WGL context for it. glLib is the statically
// loaded graphics library; nil means hardware acceleration is off the
// table before we start.
func createGLContext(hwnd uintptr, glLib *win32.Library) (uintptr, error) {
	if glLib == nil {
		return 0, &shell.GLError{Kind: shell.GLLibraryNotFound}
	}

	hdc := win32.GetDC(hwnd)
	if hdc == 0 {
		return 0, &shell.GLError{Kind: shell.GLGetDC}
	}
	defer win32.ReleaseDC(hwnd, hdc)

	pfd := win32.PIXELFORMATDESCRIPTOR{
		Version:     1,
		Flags:       win32.PFD_DRAW_TO_WINDOW | win32.PFD_SUPPORT_OPENGL | win32.PFD_DOUBLEBUFFER,
		PixelType:   win32.PFD_TYPE_RGBA,
		ColorBits:   32,
		AlphaBits:   8,
		DepthBits:   24,
		StencilBits: 8,
		LayerType:   win32.PFD_MAIN_PLANE,
	}
	pfd.Size = uint16(unsafe.Sizeof(pfd))

	format := win32.ChoosePixelFormat(hdc, &pfd)
	if format == 0 {
		return 0, &shell.GLError{Kind: shell.GLNoMatchingPixelFormat}
	}
	if err := win32.SetPixelFormat(hdc, format, &pfd); err != nil {
		return 0, &shell.GLError{Kind: shell.GLDescribePixelFormat, Code: win32.ErrCode(err)}
	}

	hglrc, err := win32.WglCreateContext(hdc)
	if err != nil {
		return 0, &shell.GLError{Kind: shell.GLUnavailable, Code: win32.ErrCode(err)}
	}
	return hglrc, nil
}
