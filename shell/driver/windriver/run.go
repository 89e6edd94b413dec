// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package windriver

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/LawrenceBuckingham/azul/gl"
	"github.com/LawrenceBuckingham/azul/shell"
	"github.com/LawrenceBuckingham/azul/shell/driver/windriver/win32"
)

const windowClassName = "AzulWindowClass"

const errClassAlreadyExists = 1410 // ERROR_CLASS_ALREADY_EXISTS

var (
	classMu         sync.Mutex
	classRegistered bool
)

// registerWindowClass registers the process-wide window class once.
// Re-registration across repeated runs is tolerated as success; a
// failed attempt is not latched, so a later Run retries.
func registerWindowClass(hinstance uintptr) error {
	classMu.Lock()
	defer classMu.Unlock()
	if classRegistered {
		return nil
	}
	className, err := windows.UTF16PtrFromString(windowClassName)
	if err != nil {
		return err
	}
	wc := win32.WNDCLASSW{
		Style:         win32.CS_HREDRAW | win32.CS_VREDRAW | win32.CS_OWNDC,
		LpfnWndProc:   wndProcPtr,
		HInstance:     hinstance,
		HCursor:       win32.LoadArrowCursor(),
		LpszClassName: className,
	}
	if _, err := win32.RegisterClassW(&wc); err != nil {
		if win32.ErrCode(err) != errClassAlreadyExists {
			return err
		}
	}
	classRegistered = true
	return nil
}

// Run is the sole entry point: it creates the runtime and all
// requested windows, performs the one-time graphics function-table
// load, and drives the message loop until the last window closes. The
// returned int is the native loop's exit code.
//
// Window-creation failures are per-window and logged, never fatal.
// Only a missing module handle, a failed class registration, or a
// borrow conflict during startup aborts the call.
func Run(app *shell.App, root shell.WindowState) (int, error) {
	// The message loop, the window procedure, and every window must
	// live on one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := app.Config
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	cfg.ApplyLogging()

	hinst, err := windows.GetModuleHandle(nil)
	if err != nil {
		return 0, &shell.NoAppInstanceError{Code: win32.ErrCode(err)}
	}
	if err := registerWindowClass(uintptr(hinst)); err != nil {
		return 0, err
	}

	dwm := loadDwm()
	defer dwm.Release()

	// The graphics library is optional: a software-only run proceeds
	// with an all-null function table.
	glLib, glErr := win32.OpenLibrary("opengl32.dll")
	if glErr != nil {
		slog.Info("run: graphics library unavailable, software rendering only", "err", glErr)
	}
	defer glLib.Release()

	rt := shell.NewRuntime[*Window](uintptr(hinst), app.Data, cfg, app.Images, app.Fonts)
	if cfg.SystemFonts {
		cacheDir, cerr := os.UserCacheDir()
		if cerr != nil {
			cacheDir = os.TempDir()
		}
		if ferr := rt.Fonts.UseSystemFonts(filepath.Join(cacheDir, "azul", "fonts")); ferr != nil {
			slog.Warn("run: system font index unavailable", "err", ferr)
		}
	}
	data := &appData{
		Runtime: rt,
		Backend: app.Backend,
		Dwm:     dwm,
		GLLib:   glLib,
	}
	sa := newSharedApp(data)

	// Requested windows first, the root window always last. Each
	// failure drops that window only.
	err = sa.withMut(func(data *appData) error {
		data.CreateAll(app.Windows, root, func(state shell.WindowState) (shell.WindowID, *Window, error) {
			w, err := createWindow(sa, data, state)
			if err != nil {
				return 0, nil, err
			}
			return w.ID(), w, nil
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Elect the first window with a graphics context to perform the
	// one-time symbol resolution; make it current on a temporary
	// device context, load, then unbind. No context anywhere means
	// the table stays all-null.
	err = sa.withMut(func(data *appData) error {
		for _, w := range data.Windows.Values() {
			hglrc, ok := w.GLContext.Get()
			if !ok {
				continue
			}
			hdc := win32.GetDC(w.Hwnd)
			if hdc == 0 {
				continue
			}
			if err := win32.WglMakeCurrent(hdc, hglrc); err != nil {
				win32.ReleaseDC(w.Hwnd, hdc)
				continue
			}
			data.GL = gl.Load(win32.WglGetProcAddress, glLib.Resolve)
			win32.WglMakeCurrent(0, 0)
			win32.ReleaseDC(w.Hwnd, hdc)
			break
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = sa.withMut(func(data *appData) error {
		for _, w := range data.Windows.Values() {
			w.Show()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// The quit code lives outside the cell: recording it must not
	// depend on winning a borrow at quit time. The loop is single
	// threaded, so a plain variable is safe.
	var quitCode int32
	loopErr := shell.DispatchLoop(
		func() ([]shell.WindowID, error) {
			var ids []shell.WindowID
			err := sa.with(func(data *appData) error {
				ids = data.WindowIDs()
				return nil
			})
			return ids, err
		},
		func(id shell.WindowID) shell.PollStatus {
			return pollWindow(id, func(code int32) { quitCode = code })
		},
	)

	err = sa.withMut(func(data *appData) error {
		data.JoinThreads()
		return nil
	})
	if loopErr != nil {
		return int(quitCode), loopErr
	}
	return int(quitCode), err
}

// pollWindow blocks for one message for the window, dispatching it
// when the source is live and reporting the quit code through record
// when the source is done. The return value is the native status,
// which the dispatch loop turns into a termination decision.
func pollWindow(id shell.WindowID, record func(int32)) shell.PollStatus {
	var msg win32.MSG
	status := win32.GetMessageW(&msg, uintptr(id))
	switch {
	case status > 0:
		win32.TranslateMessage(&msg)
		win32.DispatchMessageW(&msg)
	case status == 0:
		record(int32(msg.WParam))
	}
	return shell.PollStatus(status)
}
