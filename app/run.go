// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"log/slog"

	"cogentcore.org/bootstrap3d/base/errors"
	"cogentcore.org/bootstrap3d/config"
	"cogentcore.org/bootstrap3d/gpu/glgpu"
	"cogentcore.org/bootstrap3d/system/glfwin"
)

// Options are the options for [Run] beyond the config.
type Options struct {

	// ConfigFile is reloaded while running when it changes, if set.
	ConfigFile string

	// Snapshot is a glTF file to write the gizmos of the first frame to.
	Snapshot string
}

// Run opens a window as configured and runs the app in it until
// the window is closed. It must be called on the main thread.
func Run(cfg *config.Config, a App, opts Options) error {
	win, err := glfwin.Open(&glfwin.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	r, err := glgpu.NewRenderer()
	if err != nil {
		return err
	}
	defer r.Program.Release()

	wctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var reload <-chan *config.Config
	if opts.ConfigFile != "" {
		reload = errors.Log1(config.Watch(wctx, opts.ConfigFile))
	}

	ctx := NewContext(cfg, win, r)
	ctx.Snapshot = opts.Snapshot
	err = Loop(ctx, a, reload)
	slog.Info("app done", "frames", ctx.Frame, "seconds", ctx.Time)
	return err
}
