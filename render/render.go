// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render declares the contracts between the platform shell and
// its rendering collaborators: the layout engine that builds a scene
// from application state, the renderer that rasterizes display lists,
// and the hit-tester that maps pointer coordinates to layout nodes.
// The shell only calls through these interfaces; the implementations
// live outside this module.
package render

import (
	"github.com/LawrenceBuckingham/azul/gl"
	"github.com/LawrenceBuckingham/azul/resources"
)

// DocumentID identifies one window's document within a render-API
// namespace.
type DocumentID struct {
	Namespace uint32
	ID        uint32
}

// Device-pixel geometry consumed by the renderer.
type (
	DeviceIntPoint struct{ X, Y int32 }
	DeviceIntSize  struct{ Width, Height int32 }
	DeviceIntRect  struct {
		Origin DeviceIntPoint
		Size   DeviceIntSize
	}
)

// LayoutPoint is a position in layout (logical) coordinates.
type LayoutPoint struct{ X, Y float32 }

// ResourceUpdate registers or removes a font or image with the render
// API. The payload is opaque to the shell; it is produced by the scene
// builder and forwarded to the API unchanged.
type ResourceUpdate struct {
	Kind ResourceKind
	Key  string
	Data []byte
}

// ResourceKind discriminates [ResourceUpdate] payloads.
type ResourceKind int32

const (
	AddImage ResourceKind = iota
	DeleteImage
	AddFont
	DeleteFont
)

// HitResult is the set of layout nodes under a pointer position,
// topmost first.
type HitResult struct {
	Nodes []uint64
}

// HitTestFunc resolves a pointer position against the current layout.
// The shell hands one to the scene builder at window creation; the
// layout engine invokes it, not the shell.
type HitTestFunc func(pos LayoutPoint, dpiFactor float32) HitResult

// SceneParams is everything the layout engine needs to build a
// window's initial scene. GL is nil for software-rendered windows.
type SceneParams struct {
	Title    string
	Size     DeviceIntSize
	Document DocumentID
	Images   *resources.ImageCache
	Fonts    *resources.FontCache
	GL       *gl.Functions
	HitTest  HitTestFunc
}

// Scene is the toolkit-internal UI state (DOM, styles, layout results)
// for one window. Opaque to the shell.
type Scene interface {
	Document() DocumentID
}

// API is a window's handle to the render backend, used to register and
// unregister fonts and images and to submit transactions.
type API interface {
	UpdateResources(updates []ResourceUpdate)
	Flush()
	Close()
}

// RendererOptions selects how a window's renderer is built.
type RendererOptions struct {
	// Software selects the CPU rasterizer; otherwise the renderer may
	// use the process-wide GL function table.
	Software bool

	// ClearColor is the frame background, RGBA in [0, 1].
	ClearColor [4]float32
}

// Renderer draws frames for one window. Consumed by the shell's paint
// path; construction options and implementation are external.
type Renderer interface {
	Render(viewport DeviceIntRect, size DeviceIntSize) error
	Dispose()
}

// HitTester maps pointer coordinates to the topmost interactive nodes
// of a layout tree. Replaced wholesale whenever layout changes.
type HitTester interface {
	HitTest(pos LayoutPoint, dpiFactor float32) HitResult
}

// Backend is the factory the embedding process supplies for all
// rendering collaborators.
type Backend interface {
	NewAPI(doc DocumentID) (API, error)
	NewRenderer(opts RendererOptions) (Renderer, error)
	NewHitTester(doc DocumentID) (HitTester, error)

	// BuildScene constructs the window's UI state and reports the
	// initial resource updates to submit through the window's API.
	BuildScene(params SceneParams) (Scene, []ResourceUpdate, error)
}
