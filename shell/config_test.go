// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "azul.toml")
	cfg := DefaultConfig()
	cfg.Renderer = RendererSoftware
	cfg.Verbose = true
	require.NoError(t, SaveConfig(fn, cfg))

	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestOpenConfigMissingFile(t *testing.T) {
	got, err := OpenConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultConfig(), got, "defaults survive a missing file")
}

func TestOpenConfigPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "azul.toml")
	require.NoError(t, os.WriteFile(fn, []byte("renderer = \"hardware\"\n"), 0o666))
	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, RendererHardware, got.Renderer)
	assert.True(t, got.SystemFonts, "unset fields keep their defaults")
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Renderer: "quantum"}
	assert.Error(t, cfg.Validate())

	cfg.Renderer = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, RendererAuto, cfg.Renderer)
}
