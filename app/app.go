// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs a 3D demo [App] in a frame loop: each frame clears
// the gizmo mesh, updates and draws the app, then draws the gizmos
// with the camera's projection-view and presents the frame.
package app

import (
	"log/slog"

	"cogentcore.org/bootstrap3d/base/logx"
	"cogentcore.org/bootstrap3d/camera"
	"cogentcore.org/bootstrap3d/config"
	"cogentcore.org/bootstrap3d/gpu"
	"cogentcore.org/bootstrap3d/math32"
	"cogentcore.org/bootstrap3d/mesh"
	"cogentcore.org/bootstrap3d/mesh/meshgltf"
	"github.com/go-gl/mathgl/mgl32"
)

// App is a demo app run by [Run].
type App interface {

	// Startup is called once before the first frame.
	Startup(ctx *Context) error

	// Update is called every frame with the seconds since the last frame.
	Update(ctx *Context, dt float32)

	// Draw is called every frame after Update, with the projection-view
	// of the camera bound. Gizmos added here are drawn after it returns.
	Draw(ctx *Context)

	// Shutdown is called once after the last frame.
	Shutdown(ctx *Context)
}

// Window is the window an [App] runs in.
type Window interface {
	camera.Input
	ShouldClose() bool
	SetShouldClose(close bool)
	PollEvents()
	SwapBuffers()
	Time() float64
	FramebufferSize() (width, height int)
}

// Renderer is a [gpu.Device] with a bound color program.
type Renderer interface {
	gpu.Device

	// BeginFrame sets the viewport and clears the frame.
	BeginFrame(width, height int, clear mgl32.Vec4)

	// SetProjectionViewModel sets the matrix that positions are
	// multiplied by.
	SetProjectionViewModel(m mgl32.Mat4)

	// SetChecker turns the texture coordinate checker pattern on or off.
	SetChecker(on bool)
}

// Context is the state shared with an [App].
type Context struct {
	Config   *config.Config
	Window   Window
	Renderer Renderer
	Camera   *camera.Camera

	// Gizmos is the mesh of debug geometry that is cleared every frame.
	Gizmos *mesh.Mesh

	// Time is the time of the current frame in seconds.
	Time float64

	// Frame is the number of the current frame, from 0.
	Frame int

	// Snapshot is a glTF file to write the gizmos of the first
	// frame to, if set.
	Snapshot string

	warned bool
	fps    fpsCounter
}

// NewContext returns a new context with a default camera
// looking at the origin and a gizmo mesh sized by cfg.
func NewContext(cfg *config.Config, win Window, r Renderer) *Context {
	ctx := &Context{Config: cfg, Window: win, Renderer: r}
	ctx.Camera = camera.New()
	ctx.Camera.Controls = cfg.Camera
	aspect := float32(cfg.Window.Width) / float32(max(cfg.Window.Height, 1))
	ctx.Camera.LookAt(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}).
		Perspective(math32.DegToRad(cfg.Camera.FOV), aspect, cfg.Camera.Near, cfg.Camera.Far)
	ctx.Gizmos = mesh.New(cfg.Gizmos.MaxTris, cfg.Gizmos.MaxLines)
	return ctx
}

// Loop runs the app until the window should close, applying any
// config that arrives on reload. Escape closes the window.
func Loop(ctx *Context, a App, reload <-chan *config.Config) error {
	if err := a.Startup(ctx); err != nil {
		return err
	}
	defer a.Shutdown(ctx)
	defer ctx.Gizmos.Release()

	win := ctx.Window
	last := win.Time()
	ctx.fps.start = last
	for !win.ShouldClose() {
		now := win.Time()
		dt := float32(now - last)
		last = now
		ctx.Time = now

		select {
		case cfg, ok := <-reload:
			if ok {
				ctx.ApplyConfig(cfg)
			}
		default:
		}

		if err := ctx.frame(a, dt); err != nil {
			return err
		}
		win.SwapBuffers()
		win.PollEvents()
		if win.KeyDown(camera.KeyEscape) {
			win.SetShouldClose(true)
		}
		ctx.fps.tick(now)
		ctx.Frame++
	}
	return nil
}

// frame updates and draws one frame.
func (ctx *Context) frame(a App, dt float32) error {
	ctx.Gizmos.Clear()
	a.Update(ctx, dt)

	r := ctx.Renderer
	w, h := ctx.Window.FramebufferSize()
	r.BeginFrame(w, h, ctx.Config.Window.ClearColor)
	r.SetChecker(false)
	r.SetProjectionViewModel(ctx.Camera.ProjectionView())
	a.Draw(ctx)

	r.SetChecker(false)
	r.SetProjectionViewModel(ctx.Camera.ProjectionView())
	if err := ctx.Gizmos.Draw(r); err != nil {
		return err
	}
	if ctx.Gizmos.Truncated() && !ctx.warned {
		ctx.warned = true
		slog.Warn("gizmo mesh is full, increase its capacity", "frame", ctx.Frame,
			"maxTris", ctx.Gizmos.MaxTris(), "droppedTris", ctx.Gizmos.DroppedTris(),
			"maxLines", ctx.Gizmos.MaxLines(), "droppedLines", ctx.Gizmos.DroppedLines())
	}
	if ctx.Frame == 0 && ctx.Snapshot != "" {
		if err := meshgltf.Save(ctx.Gizmos, "gizmos", ctx.Snapshot); err != nil {
			slog.Error("gizmo snapshot failed", "file", ctx.Snapshot, "err", err)
		} else {
			slog.Info("saved gizmo snapshot", "file", ctx.Snapshot)
		}
	}
	return nil
}

// ApplyConfig applies the parts of cfg that can change while running:
// camera controls, clear color and log level. Window size and gizmo
// capacity only apply on the next run.
func (ctx *Context) ApplyConfig(cfg *config.Config) {
	ctx.Camera.Controls = cfg.Camera
	ctx.Config.Camera = cfg.Camera
	ctx.Config.Window.ClearColor = cfg.Window.ClearColor
	ctx.Config.Verbose, ctx.Config.VeryVerbose, ctx.Config.Quiet = cfg.Verbose, cfg.VeryVerbose, cfg.Quiet
	logx.UserLevel.Set(logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
}

// fpsCounter logs the frame rate once per second at debug level.
type fpsCounter struct {
	start  float64
	frames int
}

func (fc *fpsCounter) tick(now float64) {
	fc.frames++
	if el := now - fc.start; el >= 1 {
		slog.Debug("frame rate", "fps", float64(fc.frames)/el)
		fc.start = now
		fc.frames = 0
	}
}
