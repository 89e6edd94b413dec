// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLibraryResolve(t *testing.T) {
	lib, err := OpenLibrary("kernel32.dll")
	require.NoError(t, err)
	defer lib.Release()

	addr := lib.Resolve("GetTickCount")
	assert.NotZero(t, addr)

	// Deterministic: the same symbol resolves to the same address.
	assert.Equal(t, addr, lib.Resolve("GetTickCount"))

	// Unknown symbols are absence, not an error.
	assert.Zero(t, lib.Resolve("ThisSymbolDoesNotExist"))
	assert.Zero(t, lib.Resolve("ThisSymbolDoesNotExist"))
}

func TestOpenLibraryNotFound(t *testing.T) {
	_, err := OpenLibrary("azul-no-such-library.dll")
	assert.Error(t, err)
}

func TestLibraryReleaseIdempotent(t *testing.T) {
	lib, err := OpenLibrary("kernel32.dll")
	require.NoError(t, err)
	lib.Release()
	lib.Release()
	assert.Zero(t, lib.Resolve("GetTickCount"))
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	assert.Zero(t, lib.Resolve("anything"))
	lib.Release()
}
