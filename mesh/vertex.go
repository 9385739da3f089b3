// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"unsafe"

	"cogentcore.org/bootstrap3d/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex, laid out as [gpu.VertexSize] bytes
// for upload: homogeneous position (w = 1), RGBA color, and
// texture coordinate.
type Vertex struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
	TexCoord mgl32.Vec2
}

// vertexBytes returns the memory of vs as bytes, without copying.
func vertexBytes(vs []Vertex) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*gpu.VertexSize)
}
