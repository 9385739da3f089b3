// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"fmt"

	"cogentcore.org/bootstrap3d/gpu"
)

// ErrOtherDevice is returned when a mesh is drawn on a device
// other than the one it was initialized on.
var ErrOtherDevice = errors.New("mesh: drawn on a different device than it was initialized on")

// Init acquires the GPU slots for the mesh on the given device:
// an indexed slot for triangles and a plain slot for lines.
// It is called by [Mesh.Draw] if needed, and does nothing if the
// mesh already has slots on dev.
func (ms *Mesh) Init(dev gpu.Device) error {
	if ms.dev != nil {
		if ms.dev != dev {
			return ErrOtherDevice
		}
		return nil
	}
	ts, err := dev.NewSlot(true)
	if err != nil {
		return fmt.Errorf("mesh: triangle slot: %w", err)
	}
	ls, err := dev.NewSlot(false)
	if err != nil {
		dev.ReleaseSlot(ts)
		return fmt.Errorf("mesh: line slot: %w", err)
	}
	ms.dev, ms.triSlot, ms.lineSlot = dev, ts, ls
	return nil
}

// Draw uploads the live triangles and lines and issues one indexed
// triangle draw and one line draw. A part that is empty is neither
// uploaded nor drawn. The caller must have bound a program whose
// attributes match [gpu.VertexSize] vertices.
func (ms *Mesh) Draw(dev gpu.Device) error {
	if err := ms.Init(dev); err != nil {
		return err
	}
	if n := len(ms.indices); n > 0 {
		if err := dev.UploadVertices(ms.triSlot, vertexBytes(ms.triVerts)); err != nil {
			return err
		}
		if err := dev.UploadIndices(ms.triSlot, ms.indices); err != nil {
			return err
		}
		dev.DrawIndexed(ms.triSlot, gpu.Triangles, n)
	}
	if n := len(ms.lineVerts); n > 0 {
		if err := dev.UploadVertices(ms.lineSlot, vertexBytes(ms.lineVerts)); err != nil {
			return err
		}
		dev.DrawArrays(ms.lineSlot, gpu.Lines, 0, n)
	}
	return nil
}

// Release frees the GPU slots of the mesh, if any.
// The mesh can be drawn again afterwards, on any device.
func (ms *Mesh) Release() {
	if ms.dev == nil {
		return
	}
	ms.dev.ReleaseSlot(ms.triSlot)
	ms.dev.ReleaseSlot(ms.lineSlot)
	ms.dev = nil
}
