// Copyright (c) 2026, The Azul Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullBackendCollaborators(t *testing.T) {
	b := NewNullBackend()
	doc := DocumentID{Namespace: 1}

	api, err := b.NewAPI(doc)
	require.NoError(t, err)
	api.UpdateResources([]ResourceUpdate{{Kind: AddImage, Key: "logo"}})
	api.Flush()
	api.Close()

	r, err := b.NewRenderer(RendererOptions{Software: true})
	require.NoError(t, err)
	assert.NoError(t, r.Render(DeviceIntRect{}, DeviceIntSize{Width: 800, Height: 600}))
	r.Dispose()

	ht, err := b.NewHitTester(doc)
	require.NoError(t, err)
	assert.Empty(t, ht.HitTest(LayoutPoint{X: 10, Y: 10}, 1).Nodes)
}

func TestNullBackendBuildScene(t *testing.T) {
	b := NewNullBackend()
	doc := DocumentID{Namespace: 2}
	scene, updates, err := b.BuildScene(SceneParams{
		Title:    "main",
		Document: doc,
		Size:     DeviceIntSize{Width: 640, Height: 480},
	})
	require.NoError(t, err)
	assert.Equal(t, doc, scene.Document())
	assert.Empty(t, updates)
}
