// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "github.com/go-gl/mathgl/mgl32"

// Renderer is a [Device] drawing with a [Program] in use.
type Renderer struct {
	*Device
	*Program
}

// NewRenderer returns a new device with the color program in use,
// and depth testing on.
func NewRenderer() (*Renderer, error) {
	pg, err := NewProgram()
	if err != nil {
		return nil, err
	}
	pg.Use()
	SetDepthTest(true)
	return &Renderer{Device: NewDevice(), Program: pg}, nil
}

// BeginFrame sets the viewport and clears the frame.
func (rn *Renderer) BeginFrame(width, height int, clear mgl32.Vec4) {
	BeginFrame(width, height, clear)
}
