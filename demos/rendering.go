// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"log/slog"

	"cogentcore.org/bootstrap3d/app"
	"cogentcore.org/bootstrap3d/camera"
	"cogentcore.org/bootstrap3d/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// tints are the colors selected by keys 1 to 4.
var tints = map[camera.Key]mgl32.Vec4{
	camera.Key1: magenta,
	camera.Key2: red,
	camera.Key3: green,
	camera.Key4: white,
}

// Rendering has a fly camera and meshes that are built once and
// drawn every frame: a mesh of primitives scaled up by a transform,
// and a checkered quad. Keys 1 to 4 rebuild the primitives in
// another color.
type Rendering struct {

	// Tint is the color of the primitives.
	Tint mgl32.Vec4

	// Shapes has the primitives.
	Shapes *mesh.Mesh

	// Quad is the checkered quad.
	Quad *mesh.Static
}

func (rn *Rendering) Startup(ctx *app.Context) error {
	rn.Tint = magenta
	rn.Shapes = mesh.New(1000, 1000)
	rn.build()

	qm := mesh.New(2, 0)
	qm.AddQuad(mgl32.Vec3{0, 0.01, 0}, 4, 4, white, nil)
	q, err := mesh.NewStaticFrom(ctx.Renderer, qm)
	if err != nil {
		return err
	}
	rn.Quad = q
	return nil
}

// build fills the shapes mesh with the primitives in the current tint.
func (rn *Rendering) build() {
	xf := mgl32.Scale3D(10, 10, 10)
	ms := rn.Shapes
	ms.Clear()
	ms.AddBox(mgl32.Vec3{-20, 0, 20}, mgl32.Vec3{0.5, 0.5, 0.5}, rn.Tint, &xf)
	ms.AddCylinder(mgl32.Vec3{-20, 0, -20}, 0.5, 0.5, 10, rn.Tint, &xf)
	ms.AddPyramid(mgl32.Vec3{20, 0, -20}, 0.5, 0.5, rn.Tint, &xf)
	ms.AddFullSphere(mgl32.Vec3{20, 0, 20}, 0.5, 16, 16, rn.Tint, &xf)
	if ms.Truncated() {
		slog.Warn("rendering demo shapes do not fit", "droppedTris", ms.DroppedTris(), "droppedLines", ms.DroppedLines())
	}
}

func (rn *Rendering) Update(ctx *app.Context, dt float32) {
	ctx.Camera.Update(dt, ctx.Window)
	for k := camera.Key1; k <= camera.Key4; k++ {
		if ctx.Window.KeyDown(k) && rn.Tint != tints[k] {
			rn.Tint = tints[k]
			rn.build()
			break
		}
	}
}

func (rn *Rendering) Draw(ctx *app.Context) {
	drawGround(ctx)
	if err := rn.Shapes.Draw(ctx.Renderer); err != nil {
		slog.Error("drawing shapes: " + err.Error())
	}
	ctx.Renderer.SetChecker(true)
	rn.Quad.Draw()
	ctx.Renderer.SetChecker(false)
}

func (rn *Rendering) Shutdown(ctx *app.Context) {
	rn.Quad.Release()
	rn.Shapes.Release()
}
