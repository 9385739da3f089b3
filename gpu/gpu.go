// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the narrow GPU contract that meshes draw through:
// buffer slots that receive uploaded vertex and index bytes, and
// indexed or non-indexed draw calls on them. See [glgpu] for the
// OpenGL implementation and [gputest] for a recording one.
package gpu

import "fmt"

// Slot is a handle to a set of GPU buffers owned by one mesh:
// a vertex buffer, an optional index buffer, and the vertex layout
// binding them. Zero is never a valid slot.
type Slot int32

// Primitives are the primitive topologies that can be drawn.
type Primitives int32

const (
	// Triangles draws each group of 3 vertices as a triangle.
	Triangles Primitives = iota

	// Lines draws each pair of vertices as a line segment.
	Lines
)

func (pr Primitives) String() string {
	switch pr {
	case Triangles:
		return "Triangles"
	case Lines:
		return "Lines"
	}
	return fmt.Sprintf("Primitives(%d)", int32(pr))
}

// Device is a GPU backend. All methods must be called on the
// thread that owns the graphics context.
type Device interface {
	// NewSlot allocates a new buffer slot, with an index buffer
	// if indexed is true.
	NewSlot(indexed bool) (Slot, error)

	// UploadVertices replaces the vertex buffer contents of the slot
	// with the given bytes, growing the buffer if needed.
	UploadVertices(s Slot, data []byte) error

	// UploadIndices replaces the index buffer contents of the slot.
	UploadIndices(s Slot, idx []uint32) error

	// DrawIndexed draws count indexes from the slot's index buffer.
	DrawIndexed(s Slot, prim Primitives, count int)

	// DrawArrays draws count vertices starting at first from the
	// slot's vertex buffer.
	DrawArrays(s Slot, prim Primitives, first, count int)

	// ReleaseSlot frees the buffers of the slot.
	ReleaseSlot(s Slot)
}

// Vertex layout shared by all slots: a vec4 position, a vec4 color
// and a vec2 texture coordinate, tightly packed.
const (
	// PositionOffset is the byte offset of the position in a vertex.
	PositionOffset = 0

	// ColorOffset is the byte offset of the color in a vertex.
	ColorOffset = 16

	// TexCoordOffset is the byte offset of the texture coordinate in a vertex.
	TexCoordOffset = 32

	// VertexSize is the size in bytes of one vertex.
	VertexSize = 40
)
