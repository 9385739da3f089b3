// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/bootstrap3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// The shape helpers below take an optional transform that is applied
// to each local-space point before adding the center offset, using
// [math32.TransformPoint]. A nil transform applies none.

var (
	// boxTris are the corner indexes of the 12 box faces, wound
	// counter-clockwise seen from outside, in [math32.Box3.Corners] order.
	boxTris = [12][3]int{
		{0, 3, 2}, {0, 2, 1}, // -x
		{4, 5, 6}, {4, 6, 7}, // +x
		{0, 4, 7}, {0, 7, 3}, // -y
		{1, 2, 6}, {1, 6, 5}, // +y
		{0, 1, 5}, {0, 5, 4}, // -z
		{3, 7, 6}, {3, 6, 2}, // +z
	}

	// boxEdges are the corner indexes of the 12 box edges.
	boxEdges = [12][2]int{
		{0, 1}, {1, 5}, {5, 4}, {4, 0},
		{3, 2}, {2, 6}, {6, 7}, {7, 3},
		{0, 3}, {1, 2}, {5, 6}, {4, 7},
	}

	axisX = mgl32.Vec4{1, 0, 0, 1}
	axisY = mgl32.Vec4{0, 1, 0, 1}
	axisZ = mgl32.Vec4{0, 0, 1, 1}
)

// boxCorners returns the transformed corners of the box with the given
// half extents around the origin, moved to center.
func boxCorners(center, extents mgl32.Vec3, transform *mgl32.Mat4) [8]mgl32.Vec3 {
	local := math32.Box3{Min: extents.Mul(-1), Max: extents}.Corners()
	var cs [8]mgl32.Vec3
	for i, c := range local {
		cs[i] = math32.TransformPoint(transform, center, c)
	}
	return cs
}

// AddBox adds a filled box of 12 triangles with the given half extents
// in the given color, outlined by its 12 edges in [Mesh.OutlineColor].
func (ms *Mesh) AddBox(center, extents mgl32.Vec3, color mgl32.Vec4, transform *mgl32.Mat4) {
	cs := boxCorners(center, extents, transform)
	for _, t := range boxTris {
		ms.AddTri(cs[t[0]], cs[t[1]], cs[t[2]], color)
	}
	for _, e := range boxEdges {
		ms.AddLine(cs[e[0]], cs[e[1]], ms.OutlineColor)
	}
}

// AddWireBox adds the 12 edges of a box with the given half extents
// in the given color.
func (ms *Mesh) AddWireBox(center, extents mgl32.Vec3, color mgl32.Vec4, transform *mgl32.Mat4) {
	cs := boxCorners(center, extents, transform)
	for _, e := range boxEdges {
		ms.AddLine(cs[e[0]], cs[e[1]], color)
	}
}

// AddAABB adds the 12 edges of the given axis-aligned box.
// It does nothing for an empty box.
func (ms *Mesh) AddAABB(box math32.Box3, color mgl32.Vec4) {
	if box.IsEmpty() {
		return
	}
	ms.AddWireBox(box.Center(), box.Extents(), color, nil)
}

// AddCylinder adds a capped cylinder along the local y axis, with the
// given radius and half length, approximated with the given number of
// segments (at least 3). It adds 4 triangles and 3 outline lines per
// segment.
func (ms *Mesh) AddCylinder(center mgl32.Vec3, radius, halfLength float32, segments int, color mgl32.Vec4, transform *mgl32.Mat4) {
	segments = max(segments, 3)
	step := 2 * math32.Pi / float32(segments)
	top := make([]mgl32.Vec3, segments)
	bot := make([]mgl32.Vec3, segments)
	for i := 0; i < segments; i++ {
		s, c := math32.Sincos(float32(i) * step)
		top[i] = math32.TransformPoint(transform, center, mgl32.Vec3{s * radius, halfLength, c * radius})
		bot[i] = math32.TransformPoint(transform, center, mgl32.Vec3{s * radius, -halfLength, c * radius})
	}
	tc := math32.TransformPoint(transform, center, mgl32.Vec3{0, halfLength, 0})
	bc := math32.TransformPoint(transform, center, mgl32.Vec3{0, -halfLength, 0})
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		ms.AddTri(tc, top[i], top[j], color)
		ms.AddTri(bc, bot[j], bot[i], color)
		ms.AddTri(top[j], top[i], bot[i], color)
		ms.AddTri(bot[i], bot[j], top[j], color)
		ms.AddLine(top[i], top[j], ms.OutlineColor)
		ms.AddLine(top[i], bot[i], ms.OutlineColor)
		ms.AddLine(bot[i], bot[j], ms.OutlineColor)
	}
}

// AddPyramid adds a square pyramid with its apex up the local y axis.
// The base has the given half width and lies halfHeight below center,
// and the apex halfHeight above it. It adds 6 triangles and 8 outline
// lines.
func (ms *Mesh) AddPyramid(center mgl32.Vec3, halfWidth, halfHeight float32, color mgl32.Vec4, transform *mgl32.Mat4) {
	base := [4]mgl32.Vec3{
		{-halfWidth, -halfHeight, -halfWidth},
		{halfWidth, -halfHeight, -halfWidth},
		{halfWidth, -halfHeight, halfWidth},
		{-halfWidth, -halfHeight, halfWidth},
	}
	for i := range base {
		base[i] = math32.TransformPoint(transform, center, base[i])
	}
	apex := math32.TransformPoint(transform, center, mgl32.Vec3{0, halfHeight, 0})
	ms.AddTri(base[0], base[1], base[2], color)
	ms.AddTri(base[0], base[2], base[3], color)
	for i := range base {
		j := (i + 1) % 4
		ms.AddTri(base[i], apex, base[j], color)
		ms.AddLine(base[i], base[j], ms.OutlineColor)
		ms.AddLine(base[i], apex, ms.OutlineColor)
	}
}

// AddSphere adds a latitude-longitude sphere, or a patch of one, with
// the given number of rows (latitude bands) and columns (longitude
// bands). The longitude range is in degrees, as is the latitude range,
// which runs from -90 (bottom pole) to 90 (top pole). Two triangles
// are added per grid cell, and outline lines along the meridians and
// the non-pole parallels. A full 360 degree longitude range closes
// the seam onto the first meridian.
func (ms *Mesh) AddSphere(center mgl32.Vec3, radius float32, rows, columns int, color mgl32.Vec4, transform *mgl32.Mat4, longMin, longMax, latMin, latMax float32) {
	if rows < 1 || columns < 1 {
		return
	}
	full := longMax-longMin >= 360
	cols := columns + 1
	if full {
		cols = columns
	}
	isPole := func(lat float32) bool { return lat == 90 || lat == -90 }

	pts := make([]mgl32.Vec3, (rows+1)*cols)
	for r := 0; r <= rows; r++ {
		lat := latMin + float32(r)*(latMax-latMin)/float32(rows)
		y, ring := math32.Sincos(math32.DegToRad(lat))
		if isPole(lat) {
			y, ring = lat/90, 0
		}
		for c := 0; c < cols; c++ {
			lon := math32.DegToRad(longMin + float32(c)*(longMax-longMin)/float32(columns))
			s, co := math32.Sincos(lon)
			p := mgl32.Vec3{-ring * s * radius, y * radius, -ring * co * radius}
			pts[r*cols+c] = math32.TransformPoint(transform, center, p)
		}
	}
	at := func(r, c int) mgl32.Vec3 {
		if full {
			c %= cols
		}
		return pts[r*cols+c]
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			ms.AddTri(at(r+1, c+1), at(r, c), at(r, c+1), color)
			ms.AddTri(at(r+1, c+1), at(r+1, c), at(r, c), color)
			ms.AddLine(at(r, c), at(r+1, c), ms.OutlineColor)
		}
		if !full {
			ms.AddLine(at(r, columns), at(r+1, columns), ms.OutlineColor)
		}
	}
	for r := 0; r <= rows; r++ {
		lat := latMin + float32(r)*(latMax-latMin)/float32(rows)
		if isPole(lat) {
			continue
		}
		for c := 0; c < columns; c++ {
			ms.AddLine(at(r, c), at(r, c+1), ms.OutlineColor)
		}
	}
}

// AddFullSphere adds a whole sphere; see [Mesh.AddSphere].
func (ms *Mesh) AddFullSphere(center mgl32.Vec3, radius float32, rows, columns int, color mgl32.Vec4, transform *mgl32.Mat4) {
	ms.AddSphere(center, radius, rows, columns, color, transform, 0, 360, -90, 90)
}

// AddQuad adds a textured quad of the given width and depth in the
// local xz plane, facing up the local y axis, with texture coordinates
// from (0, 0) to (1, 1).
func (ms *Mesh) AddQuad(center mgl32.Vec3, width, depth float32, color mgl32.Vec4, transform *mgl32.Mat4) {
	hw, hd := width/2, depth/2
	a := math32.TransformPoint(transform, center, mgl32.Vec3{-hw, 0, -hd})
	b := math32.TransformPoint(transform, center, mgl32.Vec3{hw, 0, -hd})
	c := math32.TransformPoint(transform, center, mgl32.Vec3{hw, 0, hd})
	d := math32.TransformPoint(transform, center, mgl32.Vec3{-hw, 0, hd})
	ta, tb, tc, td := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1}
	ms.AddTriUV(a, d, c, ta, td, tc, color)
	ms.AddTriUV(a, c, b, ta, tc, tb, color)
}

// AddTransform adds the axes of the given transform as three lines of
// the given length from its origin: x in red, y in green, z in blue.
func (ms *Mesh) AddTransform(m mgl32.Mat4, scale float32) {
	o := m.Col(3).Vec3()
	ms.AddLine(o, o.Add(m.Col(0).Vec3().Mul(scale)), axisX)
	ms.AddLine(o, o.Add(m.Col(1).Vec3().Mul(scale)), axisY)
	ms.AddLine(o, o.Add(m.Col(2).Vec3().Mul(scale)), axisZ)
}

// AddGrid adds a square grid of lines on the y = 0 plane, with
// 2*half+1 lines in each direction at the given spacing. The two
// lines through the origin use axisColor.
func (ms *Mesh) AddGrid(half int, spacing float32, color, axisColor mgl32.Vec4) {
	ext := float32(half) * spacing
	for i := -half; i <= half; i++ {
		cl := color
		if i == 0 {
			cl = axisColor
		}
		p := float32(i) * spacing
		ms.AddLine(mgl32.Vec3{p, 0, ext}, mgl32.Vec3{p, 0, -ext}, cl)
		ms.AddLine(mgl32.Vec3{ext, 0, p}, mgl32.Vec3{-ext, 0, p}, cl)
	}
}
