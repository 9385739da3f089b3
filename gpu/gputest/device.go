// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Device] that records uploads and
// draw calls in memory, for testing code that draws without a
// graphics context.
package gputest

import (
	"fmt"
	"slices"

	"cogentcore.org/bootstrap3d/gpu"
)

// DrawCall is one recorded draw.
type DrawCall struct {
	Slot    gpu.Slot
	Prim    gpu.Primitives
	Indexed bool
	First   int
	Count   int
}

// SlotData is the current contents of one slot.
type SlotData struct {
	Indexed  bool
	Vertices []byte
	Indices  []uint32

	// Uploads is the number of vertex uploads to this slot.
	Uploads int
}

// Device is a recording [gpu.Device].
type Device struct {
	// Slots has the data for each live slot.
	Slots map[gpu.Slot]*SlotData

	// Draws has every draw call, in order.
	Draws []DrawCall

	// Released has every released slot, in order.
	Released []gpu.Slot

	// FailSlots makes NewSlot return an error.
	FailSlots bool

	next gpu.Slot
}

// NewDevice returns a new empty recording device.
func NewDevice() *Device {
	return &Device{Slots: map[gpu.Slot]*SlotData{}}
}

func (dv *Device) NewSlot(indexed bool) (gpu.Slot, error) {
	if dv.FailSlots {
		return 0, fmt.Errorf("gputest: NewSlot: out of buffers")
	}
	dv.next++
	dv.Slots[dv.next] = &SlotData{Indexed: indexed}
	return dv.next, nil
}

func (dv *Device) slot(s gpu.Slot) (*SlotData, error) {
	sd, ok := dv.Slots[s]
	if !ok {
		return nil, fmt.Errorf("gputest: slot %d not found", s)
	}
	return sd, nil
}

func (dv *Device) UploadVertices(s gpu.Slot, data []byte) error {
	sd, err := dv.slot(s)
	if err != nil {
		return err
	}
	sd.Vertices = slices.Clone(data)
	sd.Uploads++
	return nil
}

func (dv *Device) UploadIndices(s gpu.Slot, idx []uint32) error {
	sd, err := dv.slot(s)
	if err != nil {
		return err
	}
	if !sd.Indexed {
		return fmt.Errorf("gputest: slot %d has no index buffer", s)
	}
	sd.Indices = slices.Clone(idx)
	return nil
}

func (dv *Device) DrawIndexed(s gpu.Slot, prim gpu.Primitives, count int) {
	dv.Draws = append(dv.Draws, DrawCall{Slot: s, Prim: prim, Indexed: true, Count: count})
}

func (dv *Device) DrawArrays(s gpu.Slot, prim gpu.Primitives, first, count int) {
	dv.Draws = append(dv.Draws, DrawCall{Slot: s, Prim: prim, First: first, Count: count})
}

func (dv *Device) ReleaseSlot(s gpu.Slot) {
	delete(dv.Slots, s)
	dv.Released = append(dv.Released, s)
}

// Reset clears the recorded draw calls.
func (dv *Device) Reset() {
	dv.Draws = nil
}
