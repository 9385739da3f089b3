// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bootstrap3d runs the 3D demo apps.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/bootstrap3d/base/errors"
)

func init() {
	// glfw and OpenGL calls must be made on the main thread
	runtime.LockOSThread()
}

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
