// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LawrenceBuckingham/azul/base/option"
)

func TestWindowStateClone(t *testing.T) {
	st := DefaultWindowState()
	st.Title = "editor"
	st.Position = option.Some(PhysicalPosition{X: 40, Y: 40})

	cp := st.Clone()
	assert.Equal(t, st, cp)

	cp.Title = "changed"
	cp.Size.Dimensions.Width = 1
	assert.Equal(t, "editor", st.Title)
	assert.Equal(t, float32(800), st.Size.Dimensions.Width)
}

func TestWindowStateCloneDetachesMenu(t *testing.T) {
	st := DefaultWindowState()
	st.Menu = []MenuItem{
		{Label: "File", Children: []MenuItem{
			{Label: "Open", Command: 101},
			{Separator: true},
			{Label: "Exit", Command: 102},
		}},
		{Label: "Help", Children: []MenuItem{{Label: "About", Command: 201}}},
	}

	cp := st.Clone()
	assert.Equal(t, st.Menu, cp.Menu)

	// Mutating the original's nested entries must not reach the clone.
	st.Menu[0].Children[0].Label = "mutated"
	st.Menu[1].Children = nil
	assert.Equal(t, "Open", cp.Menu[0].Children[0].Label)
	assert.Len(t, cp.Menu[1].Children, 1)
}

func TestDefaultWindowState(t *testing.T) {
	st := DefaultWindowState()
	assert.True(t, st.Flags.Visible)
	assert.True(t, st.Flags.Decorations)
	assert.True(t, st.Position.IsNone())
	assert.Equal(t, uint32(BaseDPI), st.Size.DPI)
}

func TestWindowSizePhysical(t *testing.T) {
	s := WindowSize{Dimensions: LogicalSize{Width: 800, Height: 600}, DPI: 144}
	assert.InDelta(t, 1.5, s.DPIFactor(), 1e-6)
	assert.Equal(t, PhysicalSize{Width: 1200, Height: 900}, s.Physical())
}

func TestGeometryRoundTrip(t *testing.T) {
	p := LogicalPosition{X: 100, Y: 50}
	assert.Equal(t, PhysicalPosition{X: 150, Y: 75}, p.ToPhysical(1.5))
	assert.Equal(t, p, p.ToPhysical(1.5).ToLogical(1.5))

	sz := PhysicalSize{Width: 1201, Height: 899}
	lg := sz.ToLogical(1.5)
	assert.InDelta(t, 800.667, lg.Width, 0.001)
	assert.InDelta(t, 599.333, lg.Height, 0.001)
}

func TestDPIFactorZero(t *testing.T) {
	assert.Equal(t, float32(1), DPIFactor(0))
	assert.Equal(t, float32(2), DPIFactor(192))
}
