// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsAllNull(t *testing.T) {
	f := New()
	assert.Equal(t, 0, f.NumResolved())
	for _, name := range []string{"glClear", "glViewport", "glGetString"} {
		assert.False(t, f.Has(name))
		assert.Zero(t, f.Addr(name))
	}
}

// The four per-symbol outcomes: context hit, context miss with export
// hit, both hit (context wins), both miss. None of them is an error.
func TestResolutionProtocol(t *testing.T) {
	ctx := func(name string) uintptr {
		switch name {
		case "glClear":
			return 0x1000
		case "glViewport":
			return 0x2000
		}
		return 0
	}
	exports := func(name string) uintptr {
		switch name {
		case "glViewport":
			return 0x9999 // shadowed by the context resolver
		case "glGetString":
			return 0x3000
		}
		return 0
	}

	f := Load(ctx, exports)

	assert.Equal(t, uintptr(0x1000), f.Addr("glClear"))
	assert.Equal(t, uintptr(0x2000), f.Addr("glViewport"), "context resolver takes precedence")
	assert.Equal(t, uintptr(0x3000), f.Addr("glGetString"), "export table is the fallback")
	assert.Zero(t, f.Addr("glBegin"), "double miss stores null, not an error")
	assert.Equal(t, 3, f.NumResolved())
}

func TestResolutionIsDeterministic(t *testing.T) {
	resolve := func(name string) uintptr {
		if name == "glFlush" {
			return 0x42
		}
		return 0
	}
	a := Load(resolve)
	b := Load(resolve)
	for _, name := range Symbols {
		require.Equal(t, a.Addr(name), b.Addr(name), "symbol %s", name)
	}
}

func TestLoadToleratesNoResolvers(t *testing.T) {
	f := Load()
	assert.Equal(t, 0, f.NumResolved())

	f = Load(nil, nil)
	assert.Equal(t, 0, f.NumResolved())
}

func TestUnknownSymbol(t *testing.T) {
	f := Load(func(string) uintptr { return 0x1 })
	assert.Zero(t, f.Addr("glNotAnEntryPoint"))
	assert.False(t, f.Has("glNotAnEntryPoint"))
}

func TestSymbolListSanity(t *testing.T) {
	require.Greater(t, len(Symbols), 700)
	seen := make(map[string]bool, len(Symbols))
	for _, s := range Symbols {
		assert.False(t, seen[s], "duplicate symbol %s", s)
		seen[s] = true
	}
	assert.True(t, seen["glClear"])
	assert.True(t, seen["glViewport"])
	assert.True(t, seen["glGenTextures"])
}
