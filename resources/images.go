// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resources holds the image and font caches shared by every
// window of an application. Both caches are owned by the application
// runtime and handed to the layout engine when a window's scene is
// built.
package resources

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"
)

// ImageCache is a keyed store of decoded images. Safe for use from the
// UI thread and the callback re-entry path.
type ImageCache struct {
	mu     sync.Mutex
	images map[string]image.Image
}

// NewImageCache returns an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]image.Image)}
}

// Add stores a decoded image under the given key, replacing any
// previous entry.
func (ic *ImageCache) Add(key string, img image.Image) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	ic.images[key] = img
}

// AddBytes sniffs the format of raw encoded bytes, decodes them, and
// stores the result under the given key. Non-image data is rejected
// before any decode is attempted.
func (ic *ImageCache) AddBytes(key string, data []byte) error {
	if !filetype.IsImage(data) {
		t, _ := filetype.Match(data)
		return fmt.Errorf("imagecache: %q is not an image (detected %q)", key, t.MIME.Value)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("imagecache: decoding %q: %w", key, err)
	}
	ic.Add(key, img)
	return nil
}

// Get returns the image stored under the given key, or nil.
func (ic *ImageCache) Get(key string) image.Image {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return ic.images[key]
}

// Delete removes the entry for the given key, reporting whether it
// was present.
func (ic *ImageCache) Delete(key string) bool {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	_, ok := ic.images[key]
	delete(ic.images, key)
	return ok
}

// Len returns the number of cached images.
func (ic *ImageCache) Len() int {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	return len(ic.images)
}

// Scaled returns the image under the given key resampled to the given
// size, used for window and taskbar icons. Returns nil if the key is
// missing.
func (ic *ImageCache) Scaled(key string, width, height int) image.Image {
	src := ic.Get(key)
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
