// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a free-flying 3D camera that keeps its world
// transform (model) and its view matrix as exact inverses, with a
// projection, and a frame update driven by keyboard, mouse and scroll
// [Input].
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a 3D camera. Model is the camera's world transform and
// View is always its inverse, so updating one updates the other.
// Mutators return the camera so they can be chained.
type Camera struct {

	// Controls are the parameters for [Camera.Update].
	Controls Controls

	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
}

// New returns a new camera at the origin looking down -Z,
// with identity projection and default controls.
func New() *Camera {
	cm := &Camera{model: mgl32.Ident4(), view: mgl32.Ident4(), projection: mgl32.Ident4()}
	cm.Controls.Defaults()
	return cm
}

// NewFromMatrices returns a new camera with the given world
// transform and projection.
func NewFromMatrices(model, projection mgl32.Mat4) *Camera {
	cm := New()
	cm.projection = projection
	return cm.SetModel(model)
}

// Model returns the world transform of the camera.
func (cm *Camera) Model() mgl32.Mat4 { return cm.model }

// View returns the view matrix, the inverse of [Camera.Model].
func (cm *Camera) View() mgl32.Mat4 { return cm.view }

// Projection returns the projection matrix.
func (cm *Camera) Projection() mgl32.Mat4 { return cm.projection }

// ProjectionView returns projection * view.
func (cm *Camera) ProjectionView() mgl32.Mat4 {
	return cm.projection.Mul4(cm.view)
}

// Perspective sets a perspective projection with the given vertical
// field of view in radians, aspect ratio and near and far planes.
func (cm *Camera) Perspective(fov, aspect, near, far float32) *Camera {
	cm.projection = mgl32.Perspective(fov, aspect, near, far)
	return cm
}

// SetProjection sets the projection matrix.
func (cm *Camera) SetProjection(p mgl32.Mat4) *Camera {
	cm.projection = p
	return cm
}

// LookAt sets the view to look from the given position at the given
// target, with the given up direction. from == to is undefined.
func (cm *Camera) LookAt(from, to, up mgl32.Vec3) *Camera {
	return cm.SetView(mgl32.LookAtV(from, to, up))
}

// SetModel sets the world transform, and the view to its inverse.
func (cm *Camera) SetModel(m mgl32.Mat4) *Camera {
	cm.model = m
	cm.view = m.Inv()
	return cm
}

// SetView sets the view, and the world transform to its inverse.
func (cm *Camera) SetView(v mgl32.Mat4) *Camera {
	cm.view = v
	cm.model = v.Inv()
	return cm
}

// Rotate rotates the camera by the given angle in radians about the
// given axis in camera space.
func (cm *Camera) Rotate(angle float32, axis mgl32.Vec3) *Camera {
	return cm.SetModel(cm.model.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize())))
}

// Translate moves the camera by the given world space offset.
func (cm *Camera) Translate(offset mgl32.Vec3) *Camera {
	m := cm.model
	m[12] += offset[0]
	m[13] += offset[1]
	m[14] += offset[2]
	return cm.SetModel(m)
}

// SetPosition moves the camera to the given world position,
// keeping its orientation.
func (cm *Camera) SetPosition(pos mgl32.Vec3) *Camera {
	m := cm.model
	m.SetCol(3, pos.Vec4(1))
	return cm.SetModel(m)
}

// Position returns the world position of the camera.
func (cm *Camera) Position() mgl32.Vec3 { return cm.model.Col(3).Vec3() }

// Forward returns the world direction the camera looks in,
// the negated third row of the view.
func (cm *Camera) Forward() mgl32.Vec3 { return cm.view.Row(2).Vec3().Mul(-1) }

// Right returns the world direction of the camera's right,
// the first row of the view.
func (cm *Camera) Right() mgl32.Vec3 { return cm.view.Row(0).Vec3() }

// Up returns the world direction of the camera's up,
// the second row of the view.
func (cm *Camera) Up() mgl32.Vec3 { return cm.view.Row(1).Vec3() }
