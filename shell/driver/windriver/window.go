// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows"

	"github.com/LawrenceBuckingham/azul/base/option"
	"github.com/LawrenceBuckingham/azul/render"
	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

// Window owns one native window handle and its rendering
// collaborators.
//
// Invariant: GLContext present implies Renderer present.
type Window struct {
	Hwnd  uintptr
	State shell.WindowState

	// Scene is the toolkit-internal UI state, opaque here.
	Scene render.Scene

	// GLContext is the WGL handle, absent for software-rendered
	// windows.
	GLContext option.Option[uintptr]

	RenderAPI render.API

	// Renderer is consumed once rendering starts; absent afterwards.
	Renderer option.Option[render.Renderer]

	// HitTester is replaced wholesale whenever layout changes.
	HitTester render.HitTester

	// token is the user-data registry entry attached to the native
	// handle, reclaimed at WM_NCDESTROY.
	token uintptr
}

// ID returns the window's registry key, its native handle.
func (w *Window) ID() shell.WindowID { return shell.WindowID(w.Hwnd) }

// showCommand maps the window flags to the native show command.
// Hidden wins over minimized wins over maximized.
func showCommand(flags shell.WindowFlags) int32 {
	switch {
	case !flags.Visible:
		return win32.SW_HIDE
	case flags.Minimized:
		return win32.SW_SHOWMINIMIZED
	case flags.Maximized:
		return win32.SW_SHOWMAXIMIZED
	}
	return win32.SW_SHOWNORMAL
}

// Show applies the state's visibility to the native window. Repeat
// calls are harmless by native semantics.
func (w *Window) Show() {
	win32.ShowWindow(w.Hwnd, showCommand(w.State.Flags))
}

// StartTimer arms a native timer on this window and registers t under
// the given identity. Ticks arrive through the message loop; a tick
// returning [shell.TimerTerminate] disarms and unregisters it.
func (w *Window) StartTimer(id shell.TimerID, t *shell.Timer) error {
	sa := lookupApp(w.Hwnd)
	if sa == nil {
		return fmt.Errorf("windriver: window %#x has no runtime attached", w.Hwnd)
	}
	if _, err := win32.SetTimer(w.Hwnd, uintptr(id), uint32(t.Interval.Milliseconds())); err != nil {
		return fmt.Errorf("windriver: arming timer %d: %w", id, err)
	}
	if err := sa.withMut(func(data *appData) error {
		data.AddTimer(id, t)
		return nil
	}); err != nil {
		win32.KillTimer(w.Hwnd, uintptr(id))
		return err
	}
	return nil
}

// StopTimer disarms and unregisters a timer. Unknown identities are
// ignored.
func (w *Window) StopTimer(id shell.TimerID) {
	win32.KillTimer(w.Hwnd, uintptr(id))
	if sa := lookupApp(w.Hwnd); sa != nil {
		sa.withMut(func(data *appData) error {
			data.RemoveTimer(id)
			return nil
		})
	}
}

// paint renders one frame. Hardware windows make their context current
// and swap; software windows just run the rasterizer.
func (w *Window) paint() {
	r, ok := w.Renderer.Get()
	if !ok {
		return
	}
	phys := w.State.Size.Physical()
	size := render.DeviceIntSize{Width: int32(phys.Width), Height: int32(phys.Height)}
	if err := r.Render(render.DeviceIntRect{Size: size}, size); err != nil {
		slog.Warn("window: frame render failed", "title", w.State.Title, "err", err)
		return
	}
	if hglrc, ok := w.GLContext.Get(); ok {
		hdc := win32.GetDC(w.Hwnd)
		if hdc == 0 {
			return
		}
		if win32.WglMakeCurrent(hdc, hglrc) == nil {
			win32.SwapBuffers(hdc)
			win32.WglMakeCurrent(0, 0)
		}
		win32.ReleaseDC(w.Hwnd, hdc)
	}
}

// styles derives the native style bits from the window state.
func styles(state *shell.WindowState) (style, exStyle uint32) {
	if state.Flags.Decorations {
		style = win32.WS_OVERLAPPEDWINDOW
	} else {
		style = win32.WS_POPUP
	}
	style |= win32.WS_CLIPCHILDREN | win32.WS_CLIPSIBLINGS
	exStyle = win32.WS_EX_APPWINDOW
	if state.Flags.AlwaysOnTop {
		exStyle |= win32.WS_EX_TOPMOST
	}
	if state.Platform.NoRedirectionBitmap {
		exStyle |= win32.WS_EX_NOREDIRECTIONBITMAP
	}
	return style, exStyle
}

// createWindow allocates the native window and builds its rendering
// collaborators. Failure is scoped to this window; the caller logs and
// moves on.
func createWindow(sa *sharedApp, data *appData, state shell.WindowState) (*Window, error) {
	state = state.Clone()

	className, err := windows.UTF16PtrFromString(windowClassName)
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(state.Title)
	if err != nil {
		return nil, err
	}

	style, exStyle := styles(&state)

	x, y := int32(win32.CW_USEDEFAULT), int32(win32.CW_USEDEFAULT)
	if pos, ok := state.Position.Get(); ok {
		x, y = pos.X, pos.Y
	}
	size := state.Size.Physical()

	// The token crosses the native boundary through lpCreateParams;
	// WM_NCCREATE fires inside CreateWindowExW, so it must be live
	// before the call.
	token := appRegistry.Attach(sa)

	hwnd, err := win32.CreateWindowExW(
		exStyle, className, title, style,
		x, y, int32(size.Width), int32(size.Height),
		state.Platform.Parent.Or(0), 0, data.HInstance, token)
	if err != nil {
		appRegistry.Reclaim(token)
		return nil, &shell.WindowCreateError{Title: state.Title, Code: win32.ErrCode(err)}
	}

	w := &Window{Hwnd: hwnd, State: state, token: token}

	// Hardware context per configuration; auto degrades to software
	// when setup fails, hardware-only surfaces the failure.
	if data.Config.Renderer != shell.RendererSoftware {
		hglrc, glErr := createGLContext(hwnd, data.GLLib)
		switch {
		case glErr == nil:
			w.GLContext = option.Some(hglrc)
		case data.Config.Renderer == shell.RendererHardware:
			win32.DestroyWindow(hwnd)
			return nil, glErr
		default:
			slog.Info("window: falling back to software rendering",
				"title", state.Title, "reason", glErr)
		}
	}

	if err := buildCollaborators(w, data); err != nil {
		if hglrc, ok := w.GLContext.Take(); ok {
			win32.WglDeleteContext(hglrc)
		}
		win32.DestroyWindow(hwnd)
		return nil, err
	}

	if len(state.Menu) > 0 {
		if err := attachMenu(hwnd, state.Menu); err != nil {
			slog.Warn("window: menu bar skipped", "title", state.Title, "err", err)
		}
	}
	if state.Platform.BlurBehind {
		data.Dwm.EnableBlurBehind(hwnd)
	}
	if state.Platform.ExtendedFrame {
		// -1 margins extend the frame over the whole client area.
		data.Dwm.ExtendFrame(hwnd, win32.MARGINS{
			LeftWidth: -1, RightWidth: -1, TopHeight: -1, BottomHeight: -1,
		})
	}
	return w, nil
}

// buildMenu converts a menu tree into a native menu handle. The caller
// owns the handle until it is attached to a window.
func buildMenu(items []shell.MenuItem) (uintptr, error) {
	menu := win32.CreateMenu()
	if menu == 0 {
		return 0, fmt.Errorf("windriver: creating menu bar failed")
	}
	if err := appendMenuItems(menu, items); err != nil {
		win32.DestroyMenu(menu)
		return 0, err
	}
	return menu, nil
}

func appendMenuItems(menu uintptr, items []shell.MenuItem) error {
	for _, item := range items {
		if item.Separator {
			if err := win32.AppendMenuW(menu, win32.MF_SEPARATOR, 0, nil); err != nil {
				return err
			}
			continue
		}
		label, err := windows.UTF16PtrFromString(item.Label)
		if err != nil {
			return err
		}
		if len(item.Children) > 0 {
			sub := win32.CreatePopupMenu()
			if sub == 0 {
				return fmt.Errorf("windriver: creating submenu %q failed", item.Label)
			}
			if err := appendMenuItems(sub, item.Children); err != nil {
				win32.DestroyMenu(sub)
				return err
			}
			if err := win32.AppendMenuW(menu, win32.MF_POPUP, sub, label); err != nil {
				win32.DestroyMenu(sub)
				return err
			}
			continue
		}
		if err := win32.AppendMenuW(menu, win32.MF_STRING, uintptr(item.Command), label); err != nil {
			return err
		}
	}
	return nil
}

func attachMenu(hwnd uintptr, items []shell.MenuItem) error {
	menu, err := buildMenu(items)
	if err != nil {
		return err
	}
	if err := win32.SetMenu(hwnd, menu); err != nil {
		win32.DestroyMenu(menu)
		return err
	}
	return nil
}

// buildCollaborators constructs the render API, renderer, hit-tester,
// and scene for a window whose native handle already exists. The
// GLContext-implies-Renderer invariant holds on every return path: a
// renderer failure drops the context rather than leaving it dangling.
func buildCollaborators(w *Window, data *appData) error {
	doc := newDocumentID()

	api, err := data.Backend.NewAPI(doc)
	if err != nil {
		return err
	}

	renderer, err := data.Backend.NewRenderer(render.RendererOptions{
		Software:   w.GLContext.IsNone(),
		ClearColor: w.State.Background,
	})
	if err != nil {
		api.Close()
		if hglrc, ok := w.GLContext.Take(); ok {
			win32.WglDeleteContext(hglrc)
		}
		return err
	}

	hitTester, err := data.Backend.NewHitTester(doc)
	if err != nil {
		renderer.Dispose()
		api.Close()
		return err
	}

	factor := w.State.Size.DPIFactor()
	scene, updates, err := data.Backend.BuildScene(render.SceneParams{
		Title:    w.State.Title,
		Document: doc,
		Size: render.DeviceIntSize{
			Width:  int32(w.State.Size.Physical().Width),
			Height: int32(w.State.Size.Physical().Height),
		},
		Images: data.Images,
		Fonts:  data.Fonts,
		GL:     data.GL,
		HitTest: func(pos render.LayoutPoint, _ float32) render.HitResult {
			return hitTester.HitTest(pos, factor)
		},
	})
	if err != nil {
		renderer.Dispose()
		api.Close()
		return err
	}

	api.UpdateResources(updates)
	api.Flush()

	w.RenderAPI = api
	w.Renderer = option.Some(renderer)
	w.HitTester = hitTester
	w.Scene = scene
	return nil
}

// destroyCollaborators releases everything built by buildCollaborators
// plus the graphics context. Called from the window procedure when the
// native handle is destroyed.
func (w *Window) destroyCollaborators() {
	if r, ok := w.Renderer.Take(); ok {
		r.Dispose()
	}
	if hglrc, ok := w.GLContext.Take(); ok {
		win32.WglDeleteContext(hglrc)
	}
	if w.RenderAPI != nil {
		w.RenderAPI.Close()
		w.RenderAPI = nil
	}
}
