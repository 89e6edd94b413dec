// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != slog.LevelWarn {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", slog.LevelWarn, l)
	}
}

func TestHandler(t *testing.T) {
	old := UserLevel
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))

	lg.Warn("window creation failed", "code", 1400)
	out := buf.String()
	if !strings.Contains(out, "window creation failed") {
		t.Errorf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "code=1400") {
		t.Errorf("missing attr in output: %q", out)
	}
}

func TestHandlerLevelGate(t *testing.T) {
	old := UserLevel
	UserLevel = slog.LevelError
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Info("this is info")
	if buf.Len() != 0 {
		t.Errorf("info message leaked past error-level gate: %q", buf.String())
	}
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	old := UserLevel
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf)).WithGroup("shell").With("hwnd", 42)
	lg.Debug("showing")
	out := buf.String()
	if !strings.Contains(out, "shell.showing") {
		t.Errorf("missing group prefix: %q", out)
	}
	if !strings.Contains(out, "hwnd=42") {
		t.Errorf("missing bound attr: %q", out)
	}
}
