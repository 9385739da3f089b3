// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "github.com/go-gl/mathgl/mgl32"

// KeyFrame is a position and rotation pose at one point of an animation.
type KeyFrame struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewKeyFrame returns a key frame at pos, rotated by the given
// euler angles in radians (applied about X, then Y, then Z).
func NewKeyFrame(pos, euler mgl32.Vec3) KeyFrame {
	return KeyFrame{Position: pos, Rotation: mgl32.AnglesToQuat(euler[0], euler[1], euler[2], mgl32.XYZ)}
}

// Interpolate returns the pose between kf (s = 0) and to (s = 1),
// with linear interpolation of the position and spherical
// interpolation of the rotation.
func (kf KeyFrame) Interpolate(to KeyFrame, s float32) KeyFrame {
	p := kf.Position.Mul(1 - s).Add(to.Position.Mul(s))
	r := mgl32.QuatSlerp(kf.Rotation, to.Rotation, s)
	return KeyFrame{Position: p, Rotation: r}
}

// Matrix returns the transform translating by the position
// after rotating by the rotation.
func (kf KeyFrame) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(kf.Position[0], kf.Position[1], kf.Position[2]).Mul4(kf.Rotation.Mat4())
}

// Bone is one joint of a hierarchy animated between two key frames.
type Bone struct {
	Frames [2]KeyFrame

	// Matrix is the world transform computed by the last [Bone.Update].
	Matrix mgl32.Mat4
}

// Update sets the bone's world matrix for blend factor s,
// concatenated with the given parent world matrix
// (nil for a root bone), and returns it.
func (bn *Bone) Update(parent *mgl32.Mat4, s float32) mgl32.Mat4 {
	local := bn.Frames[0].Interpolate(bn.Frames[1], s).Matrix()
	if parent != nil {
		local = parent.Mul4(local)
	}
	bn.Matrix = local
	return local
}

// Position returns the translation of the bone's world matrix.
func (bn *Bone) Position() mgl32.Vec3 {
	return bn.Matrix.Col(3).Vec3()
}
