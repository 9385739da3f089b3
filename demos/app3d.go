// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"cogentcore.org/bootstrap3d/app"
	"github.com/go-gl/mathgl/mgl32"
)

// App3D draws the world axes on a ground grid from a fixed camera.
type App3D struct{}

func (a *App3D) Startup(ctx *app.Context) error { return nil }

func (a *App3D) Update(ctx *app.Context, dt float32) {}

func (a *App3D) Draw(ctx *app.Context) {
	drawGround(ctx)
}

func (a *App3D) Shutdown(ctx *app.Context) {}

// drawGround adds the world axes and a 21x21 line grid
// with white center lines.
func drawGround(ctx *app.Context) {
	ctx.Gizmos.AddTransform(mgl32.Ident4(), 1)
	ctx.Gizmos.AddGrid(10, 1, black, white)
}
