// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"cogentcore.org/bootstrap3d/app"
	"cogentcore.org/bootstrap3d/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Animation has a fly camera, a box moving between two keyframes,
// a three bone leg, and a bouncing sphere tested against a plane.
type Animation struct {

	// Box moves between its two keyframes.
	Box [2]math32.KeyFrame

	// Leg is the hip, knee and ankle, each relative to the one before.
	Leg [3]math32.Bone

	// Plane is the plane the sphere is tested against.
	Plane math32.Plane

	// Sphere is the bouncing sphere.
	Sphere math32.Sphere

	// Side is which side of the plane the sphere is on.
	Side math32.PlaneSides

	// boxMatrix is the transform of the box in the current frame
	boxMatrix mgl32.Mat4
}

func (an *Animation) Startup(ctx *app.Context) error {
	an.Box = [2]math32.KeyFrame{
		math32.NewKeyFrame(mgl32.Vec3{10, 5, 10}, mgl32.Vec3{0, -1, 0}),
		math32.NewKeyFrame(mgl32.Vec3{-10, 0, -10}, mgl32.Vec3{0, 1, 0}),
	}
	an.Leg[0].Frames = [2]math32.KeyFrame{
		math32.NewKeyFrame(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 0, 0}),
		math32.NewKeyFrame(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{-1, 0, 0}),
	}
	an.Leg[1].Frames = [2]math32.KeyFrame{
		math32.NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{1, 0, 0}),
		math32.NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{}),
	}
	an.Leg[2].Frames = [2]math32.KeyFrame{
		math32.NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{-1, 0, 0}),
		math32.NewKeyFrame(mgl32.Vec3{0, -2.5, 0}, mgl32.Vec3{}),
	}
	an.Plane = math32.Plane{Normal: mgl32.Vec3{0, 1, 0}, Distance: 1}
	an.Sphere.Radius = 0.5
	return nil
}

// Phase returns the animation phase in [0, 1] at the given time.
func Phase(t float64) float32 {
	return math32.Cos(float32(t))*0.5 + 0.5
}

func (an *Animation) Update(ctx *app.Context, dt float32) {
	ctx.Camera.Update(dt, ctx.Window)
	s := Phase(ctx.Time)
	an.boxMatrix = an.Box[0].Interpolate(an.Box[1], s).Matrix()

	var parent *mgl32.Mat4
	for i := range an.Leg {
		an.Leg[i].Update(parent, s)
		parent = &an.Leg[i].Matrix
	}

	an.Sphere.Center = mgl32.Vec3{0, math32.Cos(float32(ctx.Time)) + 1, 0}
	an.Side = an.Sphere.Classify(an.Plane)
}

// PlaneColor returns the plane color for the side the sphere is on:
// green in front, red behind and yellow when intersecting.
func PlaneColor(side math32.PlaneSides) mgl32.Vec4 {
	switch side {
	case math32.Front:
		return green
	case math32.Back:
		return red
	}
	return yellow
}

func (an *Animation) Draw(ctx *app.Context) {
	gz := ctx.Gizmos
	drawGround(ctx)

	half := mgl32.Vec3{0.5, 0.5, 0.5}
	gz.AddTransform(an.boxMatrix, 1)
	gz.AddBox(mgl32.Vec3{}, half, red, &an.boxMatrix)
	for i := range an.Leg {
		gz.AddBox(mgl32.Vec3{}, half, magenta, &an.Leg[i].Matrix)
	}

	gz.AddFullSphere(an.Sphere.Center, an.Sphere.Radius, 8, 8, magenta, nil)
	pc := PlaneColor(an.Side)
	y := an.Plane.Distance
	gz.AddTri(mgl32.Vec3{4, y, 4}, mgl32.Vec3{4, y, -4}, mgl32.Vec3{-4, y, -4}, pc)
	gz.AddTri(mgl32.Vec3{4, y, 4}, mgl32.Vec3{-4, y, -4}, mgl32.Vec3{-4, y, 4}, pc)
}

func (an *Animation) Shutdown(ctx *app.Context) {}
