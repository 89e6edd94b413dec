// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/windows"

	"github.com/LawrenceBuckingham/azul/base/option"
	"github.com/LawrenceBuckingham/azul/render"
	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

func TestStyles(t *testing.T) {
	st := shell.DefaultWindowState()
	style, exStyle := styles(&st)
	assert.NotZero(t, style&win32.WS_OVERLAPPEDWINDOW)
	assert.Zero(t, exStyle&win32.WS_EX_TOPMOST)

	st.Flags.Decorations = false
	st.Flags.AlwaysOnTop = true
	st.Platform.NoRedirectionBitmap = true
	style, exStyle = styles(&st)
	assert.NotZero(t, style&win32.WS_POPUP)
	assert.NotZero(t, exStyle&win32.WS_EX_TOPMOST)
	assert.NotZero(t, exStyle&win32.WS_EX_NOREDIRECTIONBITMAP)
}

func TestNewDocumentIDUnique(t *testing.T) {
	assert.NotEqual(t, newDocumentID(), newDocumentID())
}

func TestDwmNilSafe(t *testing.T) {
	var d *DwmFunctions
	d.EnableBlurBehind(0)
	d.ExtendFrame(0, win32.MARGINS{})
	d.Flush()
	d.Release()
}

func TestLoadDwm(t *testing.T) {
	d := loadDwm()
	if d == nil {
		t.Skip("compositor library unavailable")
	}
	defer d.Release()
	// The three extensions ship with every supported Windows version,
	// but absence must stay a silent degrade either way.
	d.Flush()
}

func TestCreateGLContextNoLibrary(t *testing.T) {
	_, err := createGLContext(0, nil)
	var glErr *shell.GLError
	assert.ErrorAs(t, err, &glErr)
	assert.Equal(t, shell.GLLibraryNotFound, glErr.Kind)
}

func TestMonitorsEmpty(t *testing.T) {
	assert.Empty(t, Monitors())
}

func TestShowCommand(t *testing.T) {
	flags := shell.DefaultWindowState().Flags
	assert.Equal(t, int32(win32.SW_SHOWNORMAL), showCommand(flags))

	flags.Maximized = true
	assert.Equal(t, int32(win32.SW_SHOWMAXIMIZED), showCommand(flags))

	flags.Minimized = true
	assert.Equal(t, int32(win32.SW_SHOWMINIMIZED), showCommand(flags), "minimized wins over maximized")

	flags.Visible = false
	assert.Equal(t, int32(win32.SW_HIDE), showCommand(flags), "hidden wins over everything")
}

// recordingRenderer captures the sizes it was asked to draw.
type recordingRenderer struct {
	sizes []render.DeviceIntSize
}

func (r *recordingRenderer) Render(viewport render.DeviceIntRect, size render.DeviceIntSize) error {
	r.sizes = append(r.sizes, size)
	return nil
}

func (r *recordingRenderer) Dispose() {}

func TestPaintRendersCurrentSize(t *testing.T) {
	rec := &recordingRenderer{}
	w := &Window{State: shell.DefaultWindowState()}
	w.State.Size.Dimensions = shell.LogicalSize{Width: 320, Height: 200}
	w.Renderer = option.Some[render.Renderer](rec)

	w.paint()
	require.Len(t, rec.sizes, 1)
	assert.Equal(t, render.DeviceIntSize{Width: 320, Height: 200}, rec.sizes[0])
}

func TestPaintWithoutRenderer(t *testing.T) {
	w := &Window{State: shell.DefaultWindowState()}
	w.paint()
}

func TestStartTimerWithoutRuntime(t *testing.T) {
	// A window whose handle has no runtime token attached cannot arm
	// timers; nothing is registered.
	w := &Window{State: shell.DefaultWindowState()}
	err := w.StartTimer(1, &shell.Timer{Interval: 10 * time.Millisecond})
	assert.Error(t, err)
}

func TestSetTimerThreadTimer(t *testing.T) {
	// With a null window handle the system assigns the identifier;
	// arming and killing must round-trip.
	id, err := win32.SetTimer(0, 0, 20)
	require.NoError(t, err)
	require.NotZero(t, id)
	win32.KillTimer(0, id)
}

func TestBuildMenu(t *testing.T) {
	menu, err := buildMenu([]shell.MenuItem{
		{Label: "File", Children: []shell.MenuItem{
			{Label: "Open", Command: 101},
			{Separator: true},
			{Label: "Exit", Command: 102},
		}},
		{Label: "About", Command: 201},
	})
	require.NoError(t, err)
	require.NotZero(t, menu)
	win32.DestroyMenu(menu)
}

func TestRegisterWindowClassIdempotent(t *testing.T) {
	hinst, err := windows.GetModuleHandle(nil)
	require.NoError(t, err)

	require.NoError(t, registerWindowClass(uintptr(hinst)))
	require.NoError(t, registerWindowClass(uintptr(hinst)), "second registration succeeds without latching")
}

func TestPollWindowInvalidHandle(t *testing.T) {
	// An odd value is never a real window handle; retrieval reports
	// the source as errored without recording a quit code.
	recorded := false
	status := pollWindow(shell.WindowID(0xDEAD), func(int32) { recorded = true })
	assert.True(t, status.Terminal())
	assert.Less(t, int32(status), int32(0))
	assert.False(t, recorded)
}
