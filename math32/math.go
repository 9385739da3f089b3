// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 scalar math and the small set of
// geometric types (bounding boxes, spheres, planes, key frames) used by
// the mesh and camera packages, on top of the mgl32 vector and matrix types.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Pi is the float32 value of pi.
const Pi = math.Pi

// DegToRadFactor is the number of radians per degree.
const DegToRadFactor = Pi / 180

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Vec3Min returns the component-wise minimum of a and b.
func Vec3Min(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2])}
}

// Vec3Max returns the component-wise maximum of a and b.
func Vec3Max(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2])}
}

// TransformPoint applies the affine transform m to the local point p,
// using the upper 3x3 for rotation and scale and adding the translation
// column and the given center offset. A nil m applies no transform.
func TransformPoint(m *mgl32.Mat4, center, p mgl32.Vec3) mgl32.Vec3 {
	if m == nil {
		return p.Add(center)
	}
	return m.Mat3().Mul3x1(p).Add(m.Col(3).Vec3()).Add(center)
}
