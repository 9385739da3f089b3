// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"
	"testing"

	"cogentcore.org/bootstrap3d/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestGLMode(t *testing.T) {
	assert.Equal(t, uint32(gl.TRIANGLES), glMode(gpu.Triangles))
	assert.Equal(t, uint32(gl.LINES), glMode(gpu.Lines))
	assert.Equal(t, "vertex", stageName(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", stageName(gl.FRAGMENT_SHADER))
}

func TestShaderSources(t *testing.T) {
	for _, src := range []string{ColorVertexShader, ColorFragmentShader} {
		assert.True(t, strings.HasPrefix(src, "#version 410 core"))
		assert.True(t, strings.HasSuffix(src, "\x00"))
	}
	assert.Contains(t, ColorVertexShader, "ProjectionViewModel")
}

func TestDeviceNoSlot(t *testing.T) {
	dv := NewDevice()
	assert.Error(t, dv.UploadVertices(3, []byte{1}))
	assert.Error(t, dv.UploadIndices(3, []uint32{1}))
	assert.Equal(t, 0, dv.NumSlots())
	// unknown slots are ignored without touching GL
	dv.DrawArrays(3, gpu.Lines, 0, 2)
	dv.ReleaseSlot(3)
}
