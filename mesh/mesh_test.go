// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"
	"unsafe"

	"cogentcore.org/bootstrap3d/gpu"
	"cogentcore.org/bootstrap3d/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
)

func TestVertexLayout(t *testing.T) {
	var v Vertex
	assert.Equal(t, uintptr(gpu.VertexSize), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(gpu.PositionOffset), unsafe.Offsetof(v.Position))
	assert.Equal(t, uintptr(gpu.ColorOffset), unsafe.Offsetof(v.Color))
	assert.Equal(t, uintptr(gpu.TexCoordOffset), unsafe.Offsetof(v.TexCoord))
	assert.Nil(t, vertexBytes(nil))
	assert.Len(t, vertexBytes(make([]Vertex, 3)), 3*gpu.VertexSize)
}

func TestAddTri(t *testing.T) {
	ms := New(2, 0)
	ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red)
	assert.Equal(t, 3, ms.NumTriVertex())
	assert.Equal(t, []uint32{0, 1, 2}, ms.Indices())
	for _, v := range ms.TriVertices() {
		assert.Equal(t, float32(1), v.Position[3])
		assert.Equal(t, red, v.Color)
	}

	// shares the two vertices on the common edge
	ms.AddTri(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0}, green)
	assert.Equal(t, 4, ms.NumTriVertex())
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, ms.Indices())
	// first color at a position wins
	assert.Equal(t, red, ms.TriVertices()[1].Color)
	assert.Equal(t, green, ms.TriVertices()[3].Color)
	assert.Equal(t, 2, ms.NumTris())
}

func TestAddTriDegenerate(t *testing.T) {
	ms := New(1, 0)
	p := mgl32.Vec3{1, 2, 3}
	ms.AddTri(p, p, p, red)
	assert.Equal(t, 1, ms.NumTriVertex())
	assert.Equal(t, []uint32{0, 0, 0}, ms.Indices())
}

func TestAddTriNegativeZero(t *testing.T) {
	ms := New(1, 0)
	negZero := float32(0)
	negZero = -negZero
	ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{negZero, 0, 0}, mgl32.Vec3{1, 0, 0}, red)
	assert.Equal(t, 2, ms.NumTriVertex())
	assert.Equal(t, []uint32{0, 0, 1}, ms.Indices())
}

func TestDedupNone(t *testing.T) {
	ms := New(2, 0)
	ms.Dedup = DedupNone
	ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red)
	ms.AddTri(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0}, green)
	assert.Equal(t, 6, ms.NumTriVertex())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, ms.Indices())
}

func TestAddTriUV(t *testing.T) {
	ms := New(1, 0)
	ms.AddTriUV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0},
		mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, red)
	assert.Equal(t, mgl32.Vec2{1, 0}, ms.TriVertices()[1].TexCoord)
	assert.Equal(t, mgl32.Vec2{0, 1}, ms.TriVertices()[2].TexCoord)
}

func TestAddLine(t *testing.T) {
	ms := New(0, 2)
	a, b := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}
	ms.AddLine(a, b, red)
	ms.AddLine(a, b, red)
	// line vertices are never shared
	assert.Equal(t, 4, ms.NumLineVertex())
	assert.Equal(t, 2, ms.NumLines())
	lv := ms.LineVertices()
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, lv[3].Position)
	assert.Equal(t, red, lv[2].Color)
}

func TestCapacity(t *testing.T) {
	ms := New(1, 1)
	tri := func() { ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red) }
	tri()
	assert.False(t, ms.Truncated())

	verts := append([]Vertex(nil), ms.TriVertices()...)
	tri()
	ms.AddTri(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{6, 5, 5}, mgl32.Vec3{5, 6, 5}, green)
	assert.Equal(t, 1, ms.NumTris())
	assert.Equal(t, verts, ms.TriVertices())
	assert.Equal(t, 2, ms.DroppedTris())

	ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, red)
	ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{2, 0, 0}, red)
	assert.Equal(t, 1, ms.NumLines())
	assert.Equal(t, 1, ms.DroppedLines())
	assert.True(t, ms.Truncated())

	ms.Clear()
	assert.False(t, ms.Truncated())
	tri()
	assert.Equal(t, 1, ms.NumTris())
}

func TestZeroCapacity(t *testing.T) {
	ms := New(0, -3)
	ms.AddTri(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red)
	ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, red)
	assert.Zero(t, ms.NumTris())
	assert.Zero(t, ms.NumLines())
	assert.Zero(t, ms.MaxLines())
	assert.True(t, ms.Truncated())
}

func TestClear(t *testing.T) {
	ms := New(4, 4)
	ms.AddBox(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, red, nil)
	ms.Clear()
	assert.Zero(t, ms.NumTriVertex())
	assert.Zero(t, ms.NumIndex())
	assert.Zero(t, ms.NumLineVertex())
	assert.True(t, ms.BBox().IsEmpty())

	// positions from before the clear are not reused
	ms.AddTri(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{-1, 1, 1}, mgl32.Vec3{1, -1, 1}, green)
	assert.Equal(t, []uint32{0, 1, 2}, ms.Indices())
	assert.Equal(t, green, ms.TriVertices()[0].Color)
}

func TestBBox(t *testing.T) {
	ms := New(1, 1)
	ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red)
	ms.AddLine(mgl32.Vec3{0, 0, -2}, mgl32.Vec3{0, 0, 3}, red)
	bb := ms.BBox()
	assert.Equal(t, mgl32.Vec3{0, 0, -2}, bb.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 3}, bb.Max)
}

func TestDraw(t *testing.T) {
	dev := gputest.NewDevice()
	ms := New(16, 16)
	ms.AddBox(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, red, nil)
	require.NoError(t, ms.Draw(dev))

	require.Len(t, dev.Draws, 2)
	td, ld := dev.Draws[0], dev.Draws[1]
	assert.Equal(t, gputest.DrawCall{Slot: td.Slot, Prim: gpu.Triangles, Indexed: true, Count: 36}, td)
	assert.Equal(t, gputest.DrawCall{Slot: ld.Slot, Prim: gpu.Lines, Count: 24}, ld)

	// only the live prefix is uploaded
	assert.Len(t, dev.Slots[td.Slot].Vertices, 8*gpu.VertexSize)
	assert.Len(t, dev.Slots[td.Slot].Indices, 36)
	assert.Len(t, dev.Slots[ld.Slot].Vertices, 24*gpu.VertexSize)

	// slots are kept across frames
	dev.Reset()
	ms.Clear()
	ms.AddLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, red)
	require.NoError(t, ms.Draw(dev))
	require.Len(t, dev.Draws, 1)
	assert.Equal(t, ld.Slot, dev.Draws[0].Slot)
	assert.Equal(t, 2, dev.Draws[0].Count)
	assert.Len(t, dev.Slots, 2)

	ms.Release()
	assert.ElementsMatch(t, []gpu.Slot{td.Slot, ld.Slot}, dev.Released)
}

func TestDrawEmpty(t *testing.T) {
	dev := gputest.NewDevice()
	ms := New(4, 4)
	require.NoError(t, ms.Draw(dev))
	assert.Empty(t, dev.Draws)
	for _, sd := range dev.Slots {
		assert.Zero(t, sd.Uploads)
	}
}

func TestDrawTrianglesOnly(t *testing.T) {
	dev := gputest.NewDevice()
	ms := New(4, 4)
	ms.AddTri(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, red)
	require.NoError(t, ms.Draw(dev))

	require.Len(t, dev.Draws, 1)
	td := dev.Draws[0]
	assert.Equal(t, gputest.DrawCall{Slot: td.Slot, Prim: gpu.Triangles, Indexed: true, Count: 3}, td)
	require.Len(t, dev.Slots, 2)
	for s, sd := range dev.Slots {
		if s == td.Slot {
			assert.Equal(t, 1, sd.Uploads)
			continue
		}
		// line slot
		assert.False(t, sd.Indexed)
		assert.Zero(t, sd.Uploads)
		assert.Empty(t, sd.Vertices)
	}
}

func TestDrawErrors(t *testing.T) {
	dev := gputest.NewDevice()
	dev.FailSlots = true
	ms := New(4, 4)
	assert.Error(t, ms.Draw(dev))

	dev.FailSlots = false
	require.NoError(t, ms.Draw(dev))
	assert.ErrorIs(t, ms.Draw(gputest.NewDevice()), ErrOtherDevice)
}

func TestStatic(t *testing.T) {
	dev := gputest.NewDevice()
	ms := New(2, 0)
	ms.AddQuad(mgl32.Vec3{}, 2, 2, red, nil)
	st, err := NewStaticFrom(dev, ms)
	require.NoError(t, err)
	assert.Equal(t, 2, st.NumTris())

	// later changes to the source do not affect the upload
	ms.Clear()
	st.Draw()
	st.Draw()
	require.Len(t, dev.Draws, 2)
	assert.Equal(t, 6, dev.Draws[1].Count)
	assert.True(t, dev.Draws[1].Indexed)

	st.Release()
	st.Draw()
	assert.Len(t, dev.Draws, 2)
	assert.Len(t, dev.Released, 1)

	plain, err := NewStatic(dev, make([]Vertex, 7), nil)
	require.NoError(t, err)
	plain.Draw()
	assert.Equal(t, gputest.DrawCall{Slot: dev.Draws[2].Slot, Prim: gpu.Triangles, Count: 6}, dev.Draws[2])
}
