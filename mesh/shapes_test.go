// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/bootstrap3d/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// assertOutward checks that every triangle of ms winds counter-clockwise
// seen from outside, for a convex shape around center.
func assertOutward(t *testing.T, ms *Mesh, center mgl32.Vec3) {
	t.Helper()
	vs, idx := ms.TriVertices(), ms.Indices()
	for i := 0; i < len(idx); i += 3 {
		a, b, c := vs[idx[i]].Position.Vec3(), vs[idx[i+1]].Position.Vec3(), vs[idx[i+2]].Position.Vec3()
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() < 1e-6 {
			continue // degenerate, at a pole
		}
		mid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(mid.Sub(center)), float32(0), "triangle %d faces inward", i/3)
	}
}

func TestAddBox(t *testing.T) {
	ms := New(64, 64)
	ms.AddBox(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, red, nil)
	assert.Equal(t, 8, ms.NumTriVertex())
	assert.Equal(t, 36, ms.NumIndex())
	assert.Equal(t, 12, ms.NumTris())
	assert.Equal(t, 24, ms.NumLineVertex())
	assert.Equal(t, ms.OutlineColor, ms.LineVertices()[0].Color)
	assertOutward(t, ms, mgl32.Vec3{})

	bb := ms.BBox()
	assert.Equal(t, mgl32.Vec3{-1, -1, -1}, bb.Min)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, bb.Max)
}

func TestAddBoxTransform(t *testing.T) {
	ms := New(12, 12)
	xf := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.Scale3D(2, 1, 1))
	ms.AddBox(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 1, 1}, red, &xf)
	bb := ms.BBox()
	assert.InDeltaSlice(t, []float32{8, 4, -1}, bb.Min[:], 1e-6)
	assert.InDeltaSlice(t, []float32{12, 6, 1}, bb.Max[:], 1e-6)
	assertOutward(t, ms, mgl32.Vec3{10, 5, 0})
}

func TestAddWireBox(t *testing.T) {
	ms := New(0, 12)
	ms.AddAABB(math32.B3(0, 0, 0, 2, 4, 6), green)
	assert.Equal(t, 12, ms.NumLines())
	assert.Zero(t, ms.NumTris())
	bb := ms.BBox()
	assert.Equal(t, mgl32.Vec3{2, 4, 6}, bb.Max)

	ms.Clear()
	ms.AddAABB(math32.B3Empty(), green)
	assert.Zero(t, ms.NumLines())
}

func TestAddCylinder(t *testing.T) {
	for _, segs := range []int{3, 8, 20} {
		ms := New(4*segs, 3*segs)
		ms.AddCylinder(mgl32.Vec3{}, 0.5, 1, segs, red, nil)
		assert.Equal(t, 4*segs, ms.NumTris())
		assert.Equal(t, 3*segs, ms.NumLines())
		assert.Equal(t, 2+2*segs, ms.NumTriVertex())
		assert.False(t, ms.Truncated())
		assertOutward(t, ms, mgl32.Vec3{})
	}

	ms := New(100, 100)
	ms.AddCylinder(mgl32.Vec3{}, 0.5, 1, 1, red, nil)
	assert.Equal(t, 12, ms.NumTris())
}

func TestAddPyramid(t *testing.T) {
	ms := New(6, 8)
	ms.AddPyramid(mgl32.Vec3{0, 1, 0}, 0.5, 0.5, red, nil)
	assert.Equal(t, 5, ms.NumTriVertex())
	assert.Equal(t, 6, ms.NumTris())
	assert.Equal(t, 8, ms.NumLines())
	assert.False(t, ms.Truncated())
	assertOutward(t, ms, mgl32.Vec3{0, 0.9, 0})
}

func TestAddSphere(t *testing.T) {
	ms := New(32, 28)
	ms.AddFullSphere(mgl32.Vec3{}, 1, 4, 4, red, nil)
	assert.Equal(t, 32, ms.NumTris())
	assert.Equal(t, 28, ms.NumLines())
	// one vertex per pole and 4 per non-pole parallel
	assert.Equal(t, 14, ms.NumTriVertex())
	assert.False(t, ms.Truncated())
	assertOutward(t, ms, mgl32.Vec3{})

	for _, v := range ms.TriVertices() {
		assert.InDelta(t, 1, v.Position.Vec3().Len(), 1e-5)
	}
}

func TestAddSpherePartial(t *testing.T) {
	ms := New(100, 100)
	ms.AddSphere(mgl32.Vec3{}, 1, 2, 2, red, nil, 0, 180, -90, 90)
	assert.Equal(t, 8, ms.NumTris())
	// 3 meridians per band and the equator in 2 segments
	assert.Equal(t, 8, ms.NumLines())
	assert.Equal(t, 5, ms.NumTriVertex())

	ms.Clear()
	ms.AddSphere(mgl32.Vec3{}, 1, 2, 4, red, nil, 0, 360, 0, 60)
	// no poles, so all 3 parallels are drawn
	assert.Equal(t, 8+12, ms.NumLines())
	assert.Equal(t, 12, ms.NumTriVertex())

	ms.Clear()
	ms.AddSphere(mgl32.Vec3{}, 1, 0, 4, red, nil, 0, 360, -90, 90)
	assert.Zero(t, ms.NumTris())
}

func TestAddQuad(t *testing.T) {
	ms := New(2, 0)
	ms.AddQuad(mgl32.Vec3{0, 1, 0}, 4, 2, red, nil)
	assert.Equal(t, 4, ms.NumTriVertex())
	assert.Equal(t, 2, ms.NumTris())
	bb := ms.BBox()
	assert.Equal(t, mgl32.Vec3{-2, 1, -1}, bb.Min)
	assert.Equal(t, mgl32.Vec3{2, 1, 1}, bb.Max)
	for _, v := range ms.TriVertices() {
		// texture coordinates follow the corners
		assert.Equal(t, (v.Position[0]+2)/4, v.TexCoord[0])
		assert.Equal(t, (v.Position[2]+1)/2, v.TexCoord[1])
	}
	assertOutward(t, ms, mgl32.Vec3{0, 0, 0})
}

func TestAddTransform(t *testing.T) {
	ms := New(0, 3)
	ms.AddTransform(mgl32.Translate3D(1, 2, 3), 2)
	lv := ms.LineVertices()
	assert.Len(t, lv, 6)
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, lv[0].Position)
	assert.Equal(t, mgl32.Vec4{3, 2, 3, 1}, lv[1].Position)
	assert.Equal(t, mgl32.Vec4{1, 4, 3, 1}, lv[3].Position)
	assert.Equal(t, mgl32.Vec4{1, 2, 5, 1}, lv[5].Position)
	assert.Equal(t, axisY, lv[2].Color)
}

func TestAddGrid(t *testing.T) {
	ms := New(0, 100)
	white, black := mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec4{0, 0, 0, 1}
	ms.AddGrid(10, 1, white, black)
	assert.Equal(t, 42, ms.NumLines())
	axes := 0
	for i, v := range ms.LineVertices() {
		if i%2 == 0 && v.Color == black {
			axes++
		}
	}
	assert.Equal(t, 2, axes)
	bb := ms.BBox()
	assert.Equal(t, mgl32.Vec3{-10, 0, -10}, bb.Min)
	assert.Equal(t, mgl32.Vec3{10, 0, 10}, bb.Max)
}
