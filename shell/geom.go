// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import "github.com/chewxy/math32"

// BaseDPI is the platform's nominal dots-per-inch at scale factor 1.
const BaseDPI = 96

// DPIFactor converts a monitor DPI value to the scale factor applied
// between logical and physical units.
func DPIFactor(dpi uint32) float32 {
	if dpi == 0 {
		return 1
	}
	return float32(dpi) / BaseDPI
}

// LogicalPosition is a DPI-independent position in points.
type LogicalPosition struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// LogicalSize is a DPI-independent extent in points.
type LogicalSize struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// PhysicalPosition is a position in device pixels.
type PhysicalPosition struct {
	X int32 `toml:"x"`
	Y int32 `toml:"y"`
}

// PhysicalSize is an extent in device pixels.
type PhysicalSize struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// ToPhysical scales a logical position by the given DPI factor,
// rounding to the nearest pixel.
func (p LogicalPosition) ToPhysical(factor float32) PhysicalPosition {
	return PhysicalPosition{
		X: int32(math32.Round(p.X * factor)),
		Y: int32(math32.Round(p.Y * factor)),
	}
}

// ToPhysical scales a logical size by the given DPI factor, rounding
// to the nearest pixel.
func (s LogicalSize) ToPhysical(factor float32) PhysicalSize {
	return PhysicalSize{
		Width:  uint32(math32.Round(math32.Max(0, s.Width*factor))),
		Height: uint32(math32.Round(math32.Max(0, s.Height*factor))),
	}
}

// ToLogical converts back to points at the given DPI factor.
func (p PhysicalPosition) ToLogical(factor float32) LogicalPosition {
	if factor == 0 {
		factor = 1
	}
	return LogicalPosition{X: float32(p.X) / factor, Y: float32(p.Y) / factor}
}

// ToLogical converts back to points at the given DPI factor.
func (s PhysicalSize) ToLogical(factor float32) LogicalSize {
	if factor == 0 {
		factor = 1
	}
	return LogicalSize{Width: float32(s.Width) / factor, Height: float32(s.Height) / factor}
}
