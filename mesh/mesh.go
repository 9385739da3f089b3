// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides immediate-mode batching of debug geometry:
// a [Mesh] accumulates triangles and line segments into fixed-capacity
// host buffers, sharing vertices between triangles that have equal
// positions, and submits them to a [gpu.Device] in one draw per
// primitive type. Shape helpers (boxes, cylinders, pyramids, spheres,
// grids) are built on [Mesh.AddTri] and [Mesh.AddLine].
//
// Capacity is fixed at construction: adds past capacity are dropped
// without error, and counted so that callers can check [Mesh.Truncated].
package mesh

import (
	"cogentcore.org/bootstrap3d/gpu"
	"cogentcore.org/bootstrap3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Dedup is the vertex sharing policy for triangles.
type Dedup int32

const (
	// DedupPosition reuses the index of an earlier triangle vertex
	// with an exactly equal position. The color and texture coordinate
	// of the first vertex added at a position win.
	DedupPosition Dedup = iota

	// DedupNone appends three new vertices for every triangle.
	DedupNone
)

// Mesh is a dynamic mesh buffer with a triangle sub-buffer
// (indexed) and a line sub-buffer (non-indexed vertex pairs).
// The zero value is not usable; use [New].
type Mesh struct {
	// Dedup is the vertex sharing policy for triangles.
	// It must be set before the first triangle is added.
	Dedup Dedup

	// OutlineColor is the color of the outline lines that the
	// filled shape helpers add around their faces.
	OutlineColor mgl32.Vec4

	maxTris  int
	maxLines int

	triVerts  []Vertex
	indices   []uint32
	lineVerts []Vertex

	// lookup maps triangle vertex positions to their index
	lookup map[mgl32.Vec4]uint32

	droppedTris  int
	droppedLines int

	bbox math32.Box3

	dev      gpu.Device
	triSlot  gpu.Slot
	lineSlot gpu.Slot
}

// New returns a new mesh that holds up to maxTris triangles and
// maxLines line segments. Negative capacities are treated as zero.
func New(maxTris, maxLines int) *Mesh {
	maxTris = max(maxTris, 0)
	maxLines = max(maxLines, 0)
	ms := &Mesh{
		OutlineColor: mgl32.Vec4{0, 0, 0, 1},
		maxTris:      maxTris,
		maxLines:     maxLines,
		triVerts:     make([]Vertex, 0, 3*maxTris),
		indices:      make([]uint32, 0, 3*maxTris),
		lineVerts:    make([]Vertex, 0, 2*maxLines),
		lookup:       make(map[mgl32.Vec4]uint32),
	}
	ms.bbox.SetEmpty()
	return ms
}

// MaxTris returns the triangle capacity.
func (ms *Mesh) MaxTris() int { return ms.maxTris }

// MaxLines returns the line segment capacity.
func (ms *Mesh) MaxLines() int { return ms.maxLines }

// NumTriVertex returns the number of triangle vertices.
func (ms *Mesh) NumTriVertex() int { return len(ms.triVerts) }

// NumIndex returns the number of triangle indexes, always a multiple of 3.
func (ms *Mesh) NumIndex() int { return len(ms.indices) }

// NumTris returns the number of triangles.
func (ms *Mesh) NumTris() int { return len(ms.indices) / 3 }

// NumLineVertex returns the number of line vertices, always even.
func (ms *Mesh) NumLineVertex() int { return len(ms.lineVerts) }

// NumLines returns the number of line segments.
func (ms *Mesh) NumLines() int { return len(ms.lineVerts) / 2 }

// TriVertices returns the live triangle vertices.
// The slice is only valid until the next change to the mesh.
func (ms *Mesh) TriVertices() []Vertex { return ms.triVerts }

// Indices returns the live triangle indexes.
// The slice is only valid until the next change to the mesh.
func (ms *Mesh) Indices() []uint32 { return ms.indices }

// LineVertices returns the live line vertices, in pairs.
// The slice is only valid until the next change to the mesh.
func (ms *Mesh) LineVertices() []Vertex { return ms.lineVerts }

// DroppedTris returns the number of triangles dropped for lack of
// capacity since the last [Mesh.Clear].
func (ms *Mesh) DroppedTris() int { return ms.droppedTris }

// DroppedLines returns the number of line segments dropped for lack
// of capacity since the last [Mesh.Clear].
func (ms *Mesh) DroppedLines() int { return ms.droppedLines }

// Truncated returns whether any triangle or line has been dropped
// since the last [Mesh.Clear].
func (ms *Mesh) Truncated() bool {
	return ms.droppedTris > 0 || ms.droppedLines > 0
}

// BBox returns the bounding box of all triangle and line vertices.
// It is empty when the mesh is empty.
func (ms *Mesh) BBox() math32.Box3 { return ms.bbox }

// Clear removes all triangles and lines, keeping the capacity
// and any GPU slots, and resets the dropped counters.
func (ms *Mesh) Clear() {
	ms.triVerts = ms.triVerts[:0]
	ms.indices = ms.indices[:0]
	ms.lineVerts = ms.lineVerts[:0]
	clear(ms.lookup)
	ms.droppedTris = 0
	ms.droppedLines = 0
	ms.bbox.SetEmpty()
}

// AddTri adds the triangle v0, v1, v2 with the given color.
// Counter-clockwise winding faces the viewer.
// It does nothing once the triangle capacity is reached.
func (ms *Mesh) AddTri(v0, v1, v2 mgl32.Vec3, color mgl32.Vec4) {
	ms.AddTriUV(v0, v1, v2, mgl32.Vec2{}, mgl32.Vec2{}, mgl32.Vec2{}, color)
}

// AddTriUV adds the triangle v0, v1, v2 with texture coordinates
// t0, t1, t2 and the given color.
// It does nothing once the triangle capacity is reached.
func (ms *Mesh) AddTriUV(v0, v1, v2 mgl32.Vec3, t0, t1, t2 mgl32.Vec2, color mgl32.Vec4) {
	if len(ms.indices)/3 >= ms.maxTris {
		ms.droppedTris++
		return
	}
	ms.indices = append(ms.indices,
		ms.triVertex(v0, t0, color),
		ms.triVertex(v1, t1, color),
		ms.triVertex(v2, t2, color))
}

// triVertex returns the index of the triangle vertex at pos,
// appending a new vertex unless one can be shared.
func (ms *Mesh) triVertex(pos mgl32.Vec3, tc mgl32.Vec2, color mgl32.Vec4) uint32 {
	p := pos.Vec4(1)
	if ms.Dedup == DedupPosition {
		if idx, ok := ms.lookup[p]; ok {
			return idx
		}
	}
	idx := uint32(len(ms.triVerts))
	ms.triVerts = append(ms.triVerts, Vertex{Position: p, Color: color, TexCoord: tc})
	if ms.Dedup == DedupPosition {
		ms.lookup[p] = idx
	}
	ms.bbox.ExpandByPoint(pos)
	return idx
}

// AddLine adds the line segment from v0 to v1 with the given color.
// Line vertices are never shared.
// It does nothing once the line capacity is reached.
func (ms *Mesh) AddLine(v0, v1 mgl32.Vec3, color mgl32.Vec4) {
	if len(ms.lineVerts)/2 >= ms.maxLines {
		ms.droppedLines++
		return
	}
	ms.lineVerts = append(ms.lineVerts,
		Vertex{Position: v0.Vec4(1), Color: color},
		Vertex{Position: v1.Vec4(1), Color: color})
	ms.bbox.ExpandByPoint(v0)
	ms.bbox.ExpandByPoint(v1)
}
