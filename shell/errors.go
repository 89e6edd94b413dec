// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "fmt"

// NoAppInstanceError reports that the process module handle could not
// be obtained. Fatal to startup; nothing can be created without it.
type NoAppInstanceError struct {
	Code uint32
}

func (e *NoAppInstanceError) Error() string {
	return fmt.Sprintf("shell: no process module handle (code %#x)", e.Code)
}

// WindowCreateError reports that one native window could not be
// allocated. It is scoped to that window; sibling windows proceed.
type WindowCreateError struct {
	Title string
	Code  uint32
}

func (e *WindowCreateError) Error() string {
	return fmt.Sprintf("shell: creating window %q failed (code %#x)", e.Title, e.Code)
}

// GLErrorKind identifies the stage of hardware-context setup that
// failed.
type GLErrorKind int32

const (
	GLLibraryNotFound GLErrorKind = iota
	GLGetDC
	GLDescribePixelFormat
	GLNoMatchingPixelFormat
	GLUnavailable
	GLStoreContext
)

func (k GLErrorKind) String() string {
	switch k {
	case GLLibraryNotFound:
		return "graphics library not found"
	case GLGetDC:
		return "device context unavailable"
	case GLDescribePixelFormat:
		return "pixel format description failed"
	case GLNoMatchingPixelFormat:
		return "no matching pixel format"
	case GLUnavailable:
		return "hardware acceleration unavailable"
	case GLStoreContext:
		return "storing context failed"
	default:
		return "unknown graphics failure"
	}
}

// GLError reports a hardware-context setup failure with its platform
// error code. Depending on configuration the caller either degrades
// the window to software rendering or surfaces the error.
type GLError struct {
	Kind GLErrorKind
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("shell: %s (code %#x)", e.Kind, e.Code)
}
