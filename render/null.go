// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// NullBackend is a [Backend] whose collaborators accept every call and
// draw nothing. It lets the shell run headless for examples and tests.
type NullBackend struct{}

// NewNullBackend returns a backend that renders nothing.
func NewNullBackend() *NullBackend { return &NullBackend{} }

func (b *NullBackend) NewAPI(doc DocumentID) (API, error) {
	return &nullAPI{doc: doc}, nil
}

func (b *NullBackend) NewRenderer(opts RendererOptions) (Renderer, error) {
	return &nullRenderer{}, nil
}

func (b *NullBackend) NewHitTester(doc DocumentID) (HitTester, error) {
	return nullHitTester{}, nil
}

func (b *NullBackend) BuildScene(params SceneParams) (Scene, []ResourceUpdate, error) {
	return &nullScene{doc: params.Document}, nil, nil
}

type nullScene struct{ doc DocumentID }

func (s *nullScene) Document() DocumentID { return s.doc }

type nullAPI struct {
	doc    DocumentID
	closed bool
}

func (a *nullAPI) UpdateResources(updates []ResourceUpdate) {}
func (a *nullAPI) Flush()                                   {}
func (a *nullAPI) Close()                                   { a.closed = true }

type nullRenderer struct{ disposed bool }

func (r *nullRenderer) Render(viewport DeviceIntRect, size DeviceIntSize) error { return nil }
func (r *nullRenderer) Dispose()                                                { r.disposed = true }

type nullHitTester struct{}

func (nullHitTester) HitTest(pos LayoutPoint, dpiFactor float32) HitResult {
	return HitResult{}
}
