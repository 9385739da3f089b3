// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfwin provides a desktop window with an OpenGL 4.1 core
// context, using glfw, that implements [camera.Input].
//
// All functions must be called on the main thread, which must be
// locked with [runtime.LockOSThread] in an init function.
package glfwin

import (
	"fmt"
	"log/slog"

	"cogentcore.org/bootstrap3d/camera"
	"cogentcore.org/bootstrap3d/gpu/glgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options are the options for opening a window.
type Options struct {
	Title  string
	Width  int
	Height int

	// VSync waits for the display refresh on each swap.
	VSync bool
}

// Window is an open window with a current OpenGL context.
type Window struct {
	win *glfw.Window

	// scroll is the vertical scroll offset accumulated since opening
	scroll float64
}

// Open initializes glfw, opens a window with an OpenGL 4.1 core
// context, makes the context current and initializes OpenGL.
func Open(opts *Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwin: init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	gw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwin: create window: %w", err)
	}
	gw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := glgpu.Init(); err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, err
	}
	w := &Window{win: gw}
	gw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.onScroll(yoff)
	})
	slog.Info("opened window", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return w, nil
}

func (w *Window) onScroll(yoff float64) {
	w.scroll += yoff
}

// Destroy closes the window and terminates glfw.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// SetShouldClose sets whether the window should close.
func (w *Window) SetShouldClose(close bool) { w.win.SetShouldClose(close) }

// PollEvents processes pending window events.
func (w *Window) PollEvents() { glfw.PollEvents() }

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// Time returns the seconds since glfw was initialized.
func (w *Window) Time() float64 { return glfw.GetTime() }

// FramebufferSize returns the size of the framebuffer in pixels,
// which differs from [Window.Size] on high DPI displays.
func (w *Window) FramebufferSize() (width, height int) { return w.win.GetFramebufferSize() }

// KeyDown returns whether the key is pressed.
func (w *Window) KeyDown(k camera.Key) bool {
	gk, ok := glfwKey(k)
	return ok && w.win.GetKey(gk) == glfw.Press
}

// CursorPos returns the cursor position in window coordinates.
func (w *Window) CursorPos() (x, y float64) { return w.win.GetCursorPos() }

// SetCursorPos moves the cursor, in window coordinates.
func (w *Window) SetCursorPos(x, y float64) { w.win.SetCursorPos(x, y) }

// Size returns the window size in window coordinates.
func (w *Window) Size() (width, height int) { return w.win.GetSize() }

// Scroll returns the vertical scroll offset accumulated since the
// window was opened.
func (w *Window) Scroll() float64 { return w.scroll }

var _ camera.Input = (*Window)(nil)
