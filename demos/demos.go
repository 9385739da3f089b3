// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demos has the demo apps: a static scene, keyframe and bone
// animation with a bounding sphere test, and persistent meshes.
package demos

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	white   = mgl32.Vec4{1, 1, 1, 1}
	black   = mgl32.Vec4{0, 0, 0, 1}
	red     = mgl32.Vec4{1, 0, 0, 1}
	green   = mgl32.Vec4{0, 1, 0, 1}
	yellow  = mgl32.Vec4{1, 1, 0, 1}
	magenta = mgl32.Vec4{1, 0, 1, 1}
)

// Names are the names of the demos, in order.
var Names = []string{"app3d", "animation", "rendering"}
