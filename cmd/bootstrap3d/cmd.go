// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/bootstrap3d/app"
	"cogentcore.org/bootstrap3d/base/logx"
	"cogentcore.org/bootstrap3d/config"
	"cogentcore.org/bootstrap3d/demos"
	"github.com/spf13/cobra"
)

// flags are the command line flags, which override the config file.
type flags struct {
	config   string
	snapshot string
	width    int
	height   int
	v, vv, q bool
}

// newApps returns a new app for each demo name.
var newApps = map[string]func() app.App{
	"app3d":     func() app.App { return &demos.App3D{} },
	"animation": func() app.App { return &demos.Animation{} },
	"rendering": func() app.App { return &demos.Rendering{} },
}

var demoHelp = map[string]string{
	"app3d":     "Draw the world axes and ground grid",
	"animation": "Fly around keyframe and bone animation and a sphere-plane test",
	"rendering": "Fly around persistent meshes; keys 1-4 change their color",
}

// run is the function that runs a demo, replaced in tests.
var run = app.Run

func newRootCmd() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:           "bootstrap3d",
		Short:         "3D graphics demos with a fly camera and debug gizmos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&fl.config, "config", "c", "", "TOML or YAML config file, reloaded when it changes")
	pf.StringVar(&fl.snapshot, "snapshot", "", "glTF file (.gltf or .glb) to save the first frame's gizmos to")
	pf.IntVar(&fl.width, "width", 0, "window width, overriding the config")
	pf.IntVar(&fl.height, "height", 0, "window height, overriding the config")
	pf.BoolVarP(&fl.v, "verbose", "v", false, "log info messages")
	pf.BoolVar(&fl.vv, "vv", false, "log debug messages, including the frame rate")
	pf.BoolVarP(&fl.q, "quiet", "q", false, "only log errors")

	for _, name := range demos.Names {
		name := name
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: demoHelp[name],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := fl.load()
				if err != nil {
					return err
				}
				return run(cfg, newApps[name](), app.Options{ConfigFile: fl.config, Snapshot: fl.snapshot})
			},
		})
	}
	return root
}

// load loads the config and applies the flags to it,
// and sets up logging.
func (fl *flags) load() (*config.Config, error) {
	cfg, err := config.Load(fl.config)
	if err != nil {
		return nil, err
	}
	if fl.width > 0 {
		cfg.Window.Width = fl.width
	}
	if fl.height > 0 {
		cfg.Window.Height = fl.height
	}
	cfg.Verbose = cfg.Verbose || fl.v
	cfg.VeryVerbose = cfg.VeryVerbose || fl.vv
	cfg.Quiet = cfg.Quiet || fl.q
	logx.UserLevel.Set(logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
	logx.SetDefaultLogger()
	return cfg, nil
}
