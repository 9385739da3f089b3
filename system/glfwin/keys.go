// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwin

import (
	"cogentcore.org/bootstrap3d/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyMap = [camera.KeysN]glfw.Key{
	camera.KeyW:      glfw.KeyW,
	camera.KeyA:      glfw.KeyA,
	camera.KeyS:      glfw.KeyS,
	camera.KeyD:      glfw.KeyD,
	camera.KeyQ:      glfw.KeyQ,
	camera.KeyE:      glfw.KeyE,
	camera.KeyUp:     glfw.KeyUp,
	camera.KeyDown:   glfw.KeyDown,
	camera.KeyLeft:   glfw.KeyLeft,
	camera.KeyRight:  glfw.KeyRight,
	camera.KeyEscape: glfw.KeyEscape,
	camera.Key1:      glfw.Key1,
	camera.Key2:      glfw.Key2,
	camera.Key3:      glfw.Key3,
	camera.Key4:      glfw.Key4,
}

// glfwKey returns the glfw key for k.
func glfwKey(k camera.Key) (glfw.Key, bool) {
	if k < 0 || k >= camera.KeysN {
		return glfw.KeyUnknown, false
	}
	return keyMap[k], true
}
