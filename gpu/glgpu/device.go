// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Device] on OpenGL 4.1 core, and provides
// the simple color shader program used to draw debug meshes.
package glgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/bootstrap3d/gpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Init loads the OpenGL function pointers for the current context
// and logs the driver version. It must be called after a context
// has been made current, on the thread that owns it.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu: initializing OpenGL: %w", err)
	}
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// slot holds the GL objects for one [gpu.Slot].
type slot struct {
	vao, vbo, ibo uint32

	// allocated sizes in bytes
	vboSize, iboSize int
}

// Device is an OpenGL [gpu.Device]. Buffers are allocated with
// DYNAMIC_DRAW usage and grown on demand; uploads that fit in the
// current allocation are written in place.
type Device struct {
	slots map[gpu.Slot]*slot
	next  gpu.Slot
}

// NewDevice returns a new device for the current GL context.
func NewDevice() *Device {
	return &Device{slots: map[gpu.Slot]*slot{}}
}

func (dv *Device) NewSlot(indexed bool) (gpu.Slot, error) {
	sl := &slot{}
	gl.GenVertexArrays(1, &sl.vao)
	gl.GenBuffers(1, &sl.vbo)
	if sl.vao == 0 || sl.vbo == 0 {
		return 0, fmt.Errorf("glgpu: NewSlot: could not generate buffers (GL error 0x%x)", gl.GetError())
	}
	gl.BindVertexArray(sl.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sl.vbo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, gpu.VertexSize, gpu.PositionOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, gpu.VertexSize, gpu.ColorOffset)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, gpu.VertexSize, gpu.TexCoordOffset)

	if indexed {
		gl.GenBuffers(1, &sl.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sl.ibo)
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	dv.next++
	dv.slots[dv.next] = sl
	return dv.next, nil
}

func (dv *Device) slot(s gpu.Slot) (*slot, error) {
	sl, ok := dv.slots[s]
	if !ok {
		return nil, fmt.Errorf("glgpu: slot %d not found", s)
	}
	return sl, nil
}

func (dv *Device) UploadVertices(s gpu.Slot, data []byte) error {
	sl, err := dv.slot(s)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sl.vbo)
	if len(data) > sl.vboSize {
		gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(&data[0]), gl.DYNAMIC_DRAW)
		sl.vboSize = len(data)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(&data[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (dv *Device) UploadIndices(s gpu.Slot, idx []uint32) error {
	sl, err := dv.slot(s)
	if err != nil {
		return err
	}
	if sl.ibo == 0 {
		return fmt.Errorf("glgpu: slot %d has no index buffer", s)
	}
	if len(idx) == 0 {
		return nil
	}
	n := len(idx) * 4
	gl.BindVertexArray(sl.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sl.ibo)
	if n > sl.iboSize {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n, gl.Ptr(&idx[0]), gl.DYNAMIC_DRAW)
		sl.iboSize = n
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n, gl.Ptr(&idx[0]))
	}
	gl.BindVertexArray(0)
	return nil
}

func (dv *Device) DrawIndexed(s gpu.Slot, prim gpu.Primitives, count int) {
	sl, ok := dv.slots[s]
	if !ok || count == 0 {
		return
	}
	gl.BindVertexArray(sl.vao)
	gl.DrawElements(glMode(prim), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (dv *Device) DrawArrays(s gpu.Slot, prim gpu.Primitives, first, count int) {
	sl, ok := dv.slots[s]
	if !ok || count == 0 {
		return
	}
	gl.BindVertexArray(sl.vao)
	gl.DrawArrays(glMode(prim), int32(first), int32(count))
	gl.BindVertexArray(0)
}

func (dv *Device) ReleaseSlot(s gpu.Slot) {
	sl, ok := dv.slots[s]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &sl.vao)
	gl.DeleteBuffers(1, &sl.vbo)
	if sl.ibo != 0 {
		gl.DeleteBuffers(1, &sl.ibo)
	}
	delete(dv.slots, s)
}

// NumSlots returns the number of live slots.
func (dv *Device) NumSlots() int {
	return len(dv.slots)
}

// glMode returns the GL draw mode for the given primitives.
func glMode(prim gpu.Primitives) uint32 {
	if prim == gpu.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

// BeginFrame sets the viewport and clears the color and depth buffers.
func BeginFrame(width, height int, clear mgl32.Vec4) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest turns depth testing on or off.
func SetDepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}
