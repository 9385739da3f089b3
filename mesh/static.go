// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/bootstrap3d/gpu"
)

// Static is triangle geometry uploaded once and drawn many times.
type Static struct {
	dev     gpu.Device
	slot    gpu.Slot
	indexed bool
	count   int
}

// NewStatic uploads the given vertices and indexes to a new slot on dev.
// With no indexes, the vertices are drawn as consecutive triangles,
// ignoring any trailing partial triangle.
func NewStatic(dev gpu.Device, vertices []Vertex, indices []uint32) (*Static, error) {
	st := &Static{dev: dev, indexed: len(indices) > 0}
	s, err := dev.NewSlot(st.indexed)
	if err != nil {
		return nil, fmt.Errorf("mesh: static slot: %w", err)
	}
	st.slot = s
	if err := dev.UploadVertices(s, vertexBytes(vertices)); err != nil {
		dev.ReleaseSlot(s)
		return nil, err
	}
	if st.indexed {
		if err := dev.UploadIndices(s, indices); err != nil {
			dev.ReleaseSlot(s)
			return nil, err
		}
		st.count = len(indices) - len(indices)%3
	} else {
		st.count = len(vertices) - len(vertices)%3
	}
	return st, nil
}

// NewStaticFrom uploads a snapshot of the triangles of ms.
func NewStaticFrom(dev gpu.Device, ms *Mesh) (*Static, error) {
	return NewStatic(dev, ms.TriVertices(), ms.Indices())
}

// NumTris returns the number of triangles drawn.
func (st *Static) NumTris() int { return st.count / 3 }

// Draw draws the triangles.
func (st *Static) Draw() {
	if st.dev == nil || st.count == 0 {
		return
	}
	if st.indexed {
		st.dev.DrawIndexed(st.slot, gpu.Triangles, st.count)
		return
	}
	st.dev.DrawArrays(st.slot, gpu.Triangles, 0, st.count)
}

// Release frees the slot.
func (st *Static) Release() {
	if st.dev == nil {
		return
	}
	st.dev.ReleaseSlot(st.slot)
	st.dev = nil
}
