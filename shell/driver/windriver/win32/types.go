// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

// Window class styles.
const (
	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002
	CS_OWNDC   = 0x0020
)

// Window styles.
const (
	WS_OVERLAPPEDWINDOW = 0x00CF0000
	WS_POPUP            = 0x80000000
	WS_CLIPCHILDREN     = 0x02000000
	WS_CLIPSIBLINGS     = 0x04000000
)

// Extended window styles.
const (
	WS_EX_TOPMOST             = 0x00000008
	WS_EX_APPWINDOW           = 0x00040000
	WS_EX_NOREDIRECTIONBITMAP = 0x00200000
)

// Messages handled by the window procedure.
const (
	WM_CREATE     = 0x0001
	WM_DESTROY    = 0x0002
	WM_SIZE       = 0x0005
	WM_PAINT      = 0x000F
	WM_CLOSE      = 0x0010
	WM_QUIT       = 0x0012
	WM_ERASEBKGND = 0x0014
	WM_NCCREATE   = 0x0081
	WM_NCDESTROY  = 0x0082
	WM_TIMER      = 0x0113
	WM_DPICHANGED = 0x02E0
)

// ShowWindow commands.
const (
	SW_HIDE          = 0
	SW_SHOWNORMAL    = 1
	SW_SHOWMINIMIZED = 2
	SW_SHOWMAXIMIZED = 3
)

// GetWindowLongPtr offsets.
const (
	GWLP_USERDATA = -21
)

// Pixel format descriptor flags.
const (
	PFD_TYPE_RGBA      = 0
	PFD_MAIN_PLANE     = 0
	PFD_DOUBLEBUFFER   = 0x00000001
	PFD_DRAW_TO_WINDOW = 0x00000004
	PFD_SUPPORT_OPENGL = 0x00000020
)

// Menu item flags for AppendMenuW.
const (
	MF_STRING    = 0x00000000
	MF_POPUP     = 0x00000010
	MF_SEPARATOR = 0x00000800
)

// SetWindowPos flags.
const (
	SWP_NOZORDER   = 0x0004
	SWP_NOACTIVATE = 0x0010
)

// CW_USEDEFAULT lets the system pick a position or size.
const CW_USEDEFAULT = -2147483648

// IDC_ARROW is the standard arrow cursor resource.
const IDC_ARROW = 32512

// DWM blur-behind flags.
const DWM_BB_ENABLE = 0x00000001

type POINT struct {
	X, Y int32
}

type RECT struct {
	Left, Top, Right, Bottom int32
}

type MSG struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

type WNDCLASSW struct {
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
}

type CREATESTRUCTW struct {
	CreateParams uintptr
	Instance     uintptr
	Menu         uintptr
	Parent       uintptr
	Cy           int32
	Cx           int32
	Y            int32
	X            int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}

type PIXELFORMATDESCRIPTOR struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      byte
	ColorBits      byte
	RedBits        byte
	RedShift       byte
	GreenBits      byte
	GreenShift     byte
	BlueBits       byte
	BlueShift      byte
	AlphaBits      byte
	AlphaShift     byte
	AccumBits      byte
	AccumRedBits   byte
	AccumGreenBits byte
	AccumBlueBits  byte
	AccumAlphaBits byte
	DepthBits      byte
	StencilBits    byte
	AuxBuffers     byte
	LayerType      byte
	Reserved       byte
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

// MARGINS is the DwmExtendFrameIntoClientArea parameter.
type MARGINS struct {
	LeftWidth    int32
	RightWidth   int32
	TopHeight    int32
	BottomHeight int32
}

// DWM_BLURBEHIND is the DwmEnableBlurBehindWindow parameter.
type DWM_BLURBEHIND struct {
	Flags                 uint32
	Enable                int32
	RgnBlur               uintptr
	TransitionOnMaximized int32
}
