// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfwin

import (
	"testing"

	"cogentcore.org/bootstrap3d/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap(t *testing.T) {
	seen := map[glfw.Key]bool{}
	for k := camera.Key(0); k < camera.KeysN; k++ {
		gk, ok := glfwKey(k)
		assert.True(t, ok)
		assert.NotEqual(t, glfw.KeyUnknown, gk)
		assert.False(t, seen[gk], "key %d mapped twice", k)
		seen[gk] = true
	}
	_, ok := glfwKey(camera.KeysN)
	assert.False(t, ok)
	_, ok = glfwKey(-1)
	assert.False(t, ok)
}

func TestScroll(t *testing.T) {
	a, b := &Window{}, &Window{}
	a.onScroll(1)
	a.onScroll(2.5)
	b.onScroll(-1)
	assert.Equal(t, 3.5, a.Scroll())
	assert.Equal(t, -1.0, b.Scroll())
}

func TestOpen(t *testing.T) {
	t.Skip("Need display on CI")
	w, err := Open(&Options{Title: "test", Width: 64, Height: 64})
	assert.NoError(t, err)
	defer w.Destroy()
	width, height := w.Size()
	assert.Equal(t, 64, width)
	assert.Equal(t, 64, height)
	assert.Zero(t, w.Scroll())
}
