// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestKeyFrameInterpolate(t *testing.T) {
	a := NewKeyFrame(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{})
	b := NewKeyFrame(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{0, Pi / 2, 0})

	mid := a.Interpolate(b, 0.5)
	AssertVec3InDelta(t, mgl32.Vec3{5, 0, 0}, mid.Position, StandardTol)
	want := mgl32.QuatRotate(Pi/4, mgl32.Vec3{0, 1, 0})
	assert.True(t, mid.Rotation.ApproxEqualThreshold(want, 1e-5), "%v vs %v", mid.Rotation, want)

	end := a.Interpolate(b, 1)
	AssertVec3InDelta(t, b.Position, end.Position, StandardTol)
}

func TestKeyFrameMatrix(t *testing.T) {
	kf := NewKeyFrame(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 0, Pi / 2})
	m := kf.Matrix()
	AssertVec3InDelta(t, mgl32.Vec3{0, 6, 0}, mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m), StandardTol)
}

func TestBoneChain(t *testing.T) {
	hip := Bone{Frames: [2]KeyFrame{
		NewKeyFrame(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}),
		NewKeyFrame(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}),
	}}
	knee := Bone{Frames: [2]KeyFrame{
		NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{}),
		NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{}),
	}}
	hm := hip.Update(nil, 0.3)
	knee.Update(&hm, 0.3)
	AssertVec3InDelta(t, mgl32.Vec3{0, 5, 0}, hip.Position(), StandardTol)
	AssertVec3InDelta(t, mgl32.Vec3{0, 2.5, 0}, knee.Position(), StandardTol)
}
