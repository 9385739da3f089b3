// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the demo apps,
// with defaults from struct tags, loading from TOML or YAML files,
// and live reloading of a file as it changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/bootstrap3d/base/errors"
	"cogentcore.org/bootstrap3d/base/reflectx"
	"cogentcore.org/bootstrap3d/camera"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a demo app.
type Config struct {

	// Window has the window settings.
	Window Window `toml:"window" yaml:"window"`

	// Gizmos has the capacities of the per-frame gizmo mesh.
	Gizmos Gizmos `toml:"gizmos" yaml:"gizmos"`

	// Camera has the fly camera controls.
	Camera camera.Controls `toml:"camera" yaml:"camera"`

	// Verbose logs info messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// VeryVerbose logs debug messages, including the frame rate.
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Window has the window settings.
type Window struct {
	Title  string `default:"Bootstrap 3D" toml:"title" yaml:"title"`
	Width  int    `default:"1280" toml:"width" yaml:"width"`
	Height int    `default:"720" toml:"height" yaml:"height"`

	// VSync waits for the display refresh on each swap.
	VSync bool `default:"true" toml:"vsync" yaml:"vsync"`

	// ClearColor is the RGBA background color.
	ClearColor [4]float32 `default:"0.25 0.25 0.25 1" toml:"clear_color" yaml:"clear_color"`
}

// Gizmos has the capacities of the per-frame gizmo mesh.
type Gizmos struct {
	MaxTris  int `default:"10000" toml:"max_tris" yaml:"max_tris"`
	MaxLines int `default:"10000" toml:"max_lines" yaml:"max_lines"`
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Open reads the given TOML (.toml) or YAML (.yaml, .yml) file into
// cfg, on top of its current values.
func Open(cfg *Config, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config.Open: unknown config file format %q for %q", ext, file)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return nil
}

// Load returns a new config with default values overridden by the
// given file. An empty file name returns the defaults.
func Load(file string) (*Config, error) {
	cfg := New()
	if file == "" {
		return cfg, nil
	}
	if err := Open(cfg, file); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to the given TOML or YAML file.
func Save(cfg *Config, file string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config.Save: unknown config file format %q for %q", ext, file)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}
