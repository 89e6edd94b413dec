// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resources

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"
)

// FontCache wraps a [fontscan.FontMap] behind a mutex. The font map is
// not safe for concurrent use, and the layout engine borrows it for
// the duration of every scene build, so access goes through
// [FontCache.WithMap].
type FontCache struct {
	mu  sync.Mutex
	fm  *fontscan.FontMap
	num int
}

// NewFontCache returns a font cache with an empty font map.
func NewFontCache() *FontCache {
	return &FontCache{fm: fontscan.NewFontMap(nil)}
}

// AddBytes registers one font file's raw bytes under the given path
// identifier.
func (fc *FontCache) AddBytes(path string, data []byte) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if err := fc.fm.AddFont(bytes.NewReader(data), path, ""); err != nil {
		return fmt.Errorf("fontcache: adding %q: %w", path, err)
	}
	fc.num++
	return nil
}

// AddFS walks the given filesystem and registers every file in it as a
// font. Files that fail to parse are skipped with a warning rather
// than aborting the walk.
func (fc *FontCache) AddFS(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		resource, ok := f.(opentype.Resource)
		if !ok {
			// fs.File from an embed.FS is a ReadSeeker but not a
			// ReaderAt; fall back to buffering it.
			data, rerr := fs.ReadFile(fsys, path)
			if rerr != nil {
				return rerr
			}
			resource = bytes.NewReader(data)
		}
		fc.mu.Lock()
		defer fc.mu.Unlock()
		if err := fc.fm.AddFont(resource, path, ""); err != nil {
			slog.Warn("fontcache: skipping unparsable font", "path", path, "err", err)
			return nil
		}
		fc.num++
		return nil
	})
}

// UseSystemFonts loads the platform font index, caching it in the
// given directory.
func (fc *FontCache) UseSystemFonts(cacheDir string) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.fm.UseSystemFonts(cacheDir)
}

// Len returns the number of fonts registered through this cache.
func (fc *FontCache) Len() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.num
}

// WithMap runs fn with exclusive access to the underlying font map.
func (fc *FontCache) WithMap(fn func(*fontscan.FontMap) error) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fn(fc.fm)
}
