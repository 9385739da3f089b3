// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "github.com/go-gl/mathgl/mgl32"

// Box3 represents a 3D axis aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{mgl32.Vec3{x0, y0, z0}, mgl32.Vec3{x1, y1, z1}}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// B3Center returns a new [Box3] centered on the given position
// with the given width (x), height (y) and depth (z).
func B3Center(center mgl32.Vec3, width, height, depth float32) Box3 {
	bx := Box3{}
	bx.SetFromCenterAndSize(center, mgl32.Vec3{width, height, depth})
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min = mgl32.Vec3{Infinity, Infinity, Infinity}
	b.Max = mgl32.Vec3{-Infinity, -Infinity, -Infinity}
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max[0] < b.Min[0]) || (b.Max[1] < b.Min[1]) || (b.Max[2] < b.Min[2])
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point mgl32.Vec3) {
	b.Min = Vec3Min(b.Min, point)
	b.Max = Vec3Max(b.Max, point)
}

// ExpandByBox may expand this bounding box to include the specified box
func (b *Box3) ExpandByBox(box Box3) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// SetFromCenterAndSize sets this bounding box from a center point and size.
// Size is a vector from the minimum point to the maximum point.
func (b *Box3) SetFromCenterAndSize(center, size mgl32.Vec3) {
	halfSize := size.Mul(0.5)
	b.Min = center.Sub(halfSize)
	b.Max = center.Add(halfSize)
}

// Center returns the center of the bounding box.
func (b Box3) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extents returns the half size of the box along each axis.
func (b Box3) Extents() mgl32.Vec3 {
	return b.Size().Mul(0.5)
}

// Corners returns the 8 corners of the box, in the order:
// back bottom left, back top left, front top left, front bottom left,
// back bottom right, back top right, front top right, front bottom right.
func (b Box3) Corners() [8]mgl32.Vec3 {
	mn, mx := b.Min, b.Max
	return [8]mgl32.Vec3{
		mn,
		{mn[0], mx[1], mn[2]},
		{mn[0], mx[1], mx[2]},
		{mn[0], mn[1], mx[2]},
		{mx[0], mn[1], mn[2]},
		{mx[0], mx[1], mn[2]},
		mx,
		{mx[0], mn[1], mx[2]},
	}
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point mgl32.Vec3) bool {
	if point[0] < b.Min[0] || point[0] > b.Max[0] ||
		point[1] < b.Min[1] || point[1] > b.Max[1] ||
		point[2] < b.Min[2] || point[2] > b.Max[2] {
		return false
	}
	return true
}

// IntersectsBox returns if other box intersects this one.
func (b Box3) IntersectsBox(other Box3) bool {
	// using 6 splitting planes to rule out intersections.
	if other.Max[0] < b.Min[0] || other.Min[0] > b.Max[0] ||
		other.Max[1] < b.Min[1] || other.Min[1] > b.Max[1] ||
		other.Max[2] < b.Min[2] || other.Min[2] > b.Max[2] {
		return false
	}
	return true
}

// BoundingSphere returns a bounding sphere to this bounding box.
func (b Box3) BoundingSphere() Sphere {
	return Sphere{Center: b.Center(), Radius: b.Size().Len() * 0.5}
}

// Translate returns translated position of this box by offset.
func (b Box3) Translate(offset mgl32.Vec3) Box3 {
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// MulMatrix4 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting spanning Box3 of the transformed points
func (b Box3) MulMatrix4(m mgl32.Mat4) Box3 {
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(mgl32.TransformCoordinate(c, m))
	}
	return nb
}
