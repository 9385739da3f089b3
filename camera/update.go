// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/bootstrap3d/base/errors"
	"cogentcore.org/bootstrap3d/base/reflectx"
	"cogentcore.org/bootstrap3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a keyboard key that [Camera.Update] and the apps respond to.
type Key int32

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	Key1
	Key2
	Key3
	Key4

	KeysN
)

// Input is the per-window input state read by [Camera.Update].
type Input interface {
	// KeyDown returns whether the key is currently pressed.
	KeyDown(k Key) bool

	// CursorPos returns the cursor position in window coordinates.
	CursorPos() (x, y float64)

	// SetCursorPos moves the cursor, in window coordinates.
	SetCursorPos(x, y float64)

	// Size returns the window size.
	Size() (w, h int)

	// Scroll returns the vertical scroll offset accumulated by
	// the window since it was opened.
	Scroll() float64
}

// Controls are the parameters of [Camera.Update].
type Controls struct {

	// Speed is the movement speed in units per second.
	Speed float32 `default:"3" toml:"speed" yaml:"speed"`

	// MouseSpeed scales the cursor offset from the window center
	// into a rotation in radians per second.
	MouseSpeed float32 `default:"0.01" toml:"mouse_speed" yaml:"mouse_speed"`

	// FOV is the vertical field of view in degrees at zero scroll.
	FOV float32 `default:"45" toml:"fov" yaml:"fov"`

	// ZoomStep is the field of view change in degrees per scroll unit.
	ZoomStep float32 `default:"5" toml:"zoom_step" yaml:"zoom_step"`

	// Near is the near clipping plane.
	Near float32 `default:"0.1" toml:"near" yaml:"near"`

	// Far is the far clipping plane.
	Far float32 `default:"100" toml:"far" yaml:"far"`

	// MouseLook turns the camera with the cursor, recentering it
	// every update.
	MouseLook bool `default:"true" toml:"mouse_look" yaml:"mouse_look"`
}

// Defaults sets the controls to the values in their default tags.
func (ct *Controls) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(ct))
}

// The zoomed field of view is kept within [MinFOV, MaxFOV] degrees.
const (
	MinFOV = 1
	MaxFOV = 179
)

// moves are the movement keys and the sign and basis direction
// (0 = forward, 1 = right, 2 = up) they move along.
var moves = []struct {
	key  Key
	sign float32
	dir  int
}{
	{KeyW, 1, 0}, {KeyUp, 1, 0},
	{KeyS, -1, 0}, {KeyDown, -1, 0},
	{KeyD, 1, 1}, {KeyRight, 1, 1},
	{KeyA, -1, 1}, {KeyLeft, -1, 1},
	{KeyE, 1, 2},
	{KeyQ, -1, 2},
}

// Update moves and turns the camera for a frame of dt seconds from
// the given input: movement keys translate along the camera axes, the
// cursor offset from the window center turns the camera (yaw about the
// world up, pitch about the camera's x axis) and the accumulated scroll
// zooms the field of view. A window with zero height keeps the current
// projection.
func (cm *Camera) Update(dt float32, in Input) {
	ct := &cm.Controls
	basis := [3]mgl32.Vec3{cm.Forward(), cm.Right(), cm.Up()}
	var move mgl32.Vec3
	for _, mv := range moves {
		if in.KeyDown(mv.key) {
			move = move.Add(basis[mv.dir].Mul(mv.sign * ct.Speed * dt))
		}
	}
	cm.Translate(move)

	w, h := in.Size()
	if ct.MouseLook {
		x, y := in.CursorPos()
		cx, cy := float64(w)/2, float64(h)/2
		in.SetCursorPos(cx, cy)
		dx, dy := float32(cx-x), float32(cy-y)
		if dx != 0 {
			worldUp := cm.view.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()
			cm.Rotate(dx*ct.MouseSpeed*dt, worldUp)
		}
		if dy != 0 {
			cm.Rotate(dy*ct.MouseSpeed*dt, mgl32.Vec3{1, 0, 0})
		}
	}

	if h == 0 {
		return
	}
	fov := ct.FOV - ct.ZoomStep*float32(in.Scroll())
	fov = math32.Clamp(fov, MinFOV, MaxFOV)
	cm.Perspective(math32.DegToRad(fov), float32(w)/float32(h), ct.Near, ct.Far)
}
