// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/jinzhu/copier"

// WindowFlags are the boolean toggles of a window's presentation.
type WindowFlags struct {
	Maximized   bool `toml:"maximized"`
	Minimized   bool `toml:"minimized"`
	Visible     bool `toml:"visible"`
	Focused     bool `toml:"focused"`
	Decorations bool `toml:"decorations"`
	Resizable   bool `toml:"resizable"`
	AlwaysOnTop bool `toml:"always-on-top"`
}

// PlatformFlags carry the OS-specific parts of a window's state. Only
// the Windows set is populated by this module.
type PlatformFlags struct {
	// Parent is the owning native handle for child/owned windows.
	Parent OptionHandle `toml:"-"`

	// NoRedirectionBitmap skips the GDI redirection surface, required
	// for windows composed entirely through the swap chain.
	NoRedirectionBitmap bool `toml:"no-redirection-bitmap"`

	// BlurBehind requests the compositor's blur-behind effect. Skipped
	// silently when the compositor extensions are unavailable.
	BlurBehind bool `toml:"blur-behind"`

	// ExtendedFrame extends the window frame over the whole client
	// area. Skipped silently like BlurBehind.
	ExtendedFrame bool `toml:"extended-frame"`
}

// MenuItem is one entry of a window's menu bar. An item with children
// becomes a popup submenu; a separator renders as a divider and
// ignores the other fields.
type MenuItem struct {
	Label     string     `toml:"label"`
	Command   uint32     `toml:"command"`
	Separator bool       `toml:"separator"`
	Children  []MenuItem `toml:"children"`
}

// WindowSize couples the logical dimensions with the DPI they were
// measured at.
type WindowSize struct {
	Dimensions LogicalSize `toml:"dimensions"`
	DPI        uint32      `toml:"dpi"`
}

// DPIFactor returns the logical-to-physical scale for this size.
func (s WindowSize) DPIFactor() float32 { return DPIFactor(s.DPI) }

// Physical returns the window extent in device pixels.
func (s WindowSize) Physical() PhysicalSize {
	return s.Dimensions.ToPhysical(s.DPIFactor())
}

// WindowState is both the requested configuration of a window about to
// be created and the live snapshot of one that exists. The platform
// driver keeps it current as native notifications arrive.
type WindowState struct {
	Title    string                 `toml:"title"`
	Size     WindowSize             `toml:"size"`
	Position OptionPhysicalPosition `toml:"-"`
	Flags    WindowFlags            `toml:"flags"`
	Platform PlatformFlags          `toml:"platform"`

	// Menu is the window's menu bar tree; empty means no menu.
	Menu []MenuItem `toml:"menu"`

	// Background is the clear color, RGBA in [0, 1].
	Background [4]float32 `toml:"background"`
}

// DefaultWindowState returns the state applied to windows whose
// configuration leaves fields unset.
func DefaultWindowState() WindowState {
	return WindowState{
		Title: "azul",
		Size: WindowSize{
			Dimensions: LogicalSize{Width: 800, Height: 600},
			DPI:        BaseDPI,
		},
		Flags: WindowFlags{
			Visible:     true,
			Decorations: true,
			Resizable:   true,
		},
		Background: [4]float32{1, 1, 1, 1},
	}
}

// Clone returns an independent copy so the driver's live snapshot and
// the caller's configuration never alias. The flat fields are values
// and copy by assignment; the menu tree is recursive and needs a deep
// copy to detach it from the caller's slices.
func (s WindowState) Clone() WindowState {
	out := s
	out.Menu = nil
	if err := copier.CopyWithOption(&out.Menu, &s.Menu, copier.Option{DeepCopy: true}); err != nil {
		panic("shell: cloning window menu: " + err.Error())
	}
	return out
}
