// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch/internal/packed"
	"github.com/gogpu/raymarch/internal/uniform"
	"github.com/gogpu/raymarch/scene"
)

// Pointer to camera scaling.
const (
	// RotationSensitivity is the rotation in radians per pixel of motion.
	RotationSensitivity = 0.005

	// ZoomPerLine is the distance travelled per scroll line.
	ZoomPerLine = 1.0
)

// Camera couples the camera data with its uniform buffer. Every mutation
// is uploaded immediately.
type Camera struct {
	buf       *uniform.Buffer[scene.CameraData]
	rotatable bool
}

// NewCamera uploads data into a new camera uniform.
func NewCamera(device hal.Device, queue hal.Queue, data scene.CameraData) (*Camera, error) {
	buf, err := uniform.New(device, queue, packed.Camera, data, "")
	if err != nil {
		return nil, err
	}
	return &Camera{buf: buf}, nil
}

// Data returns the current camera.
func (c *Camera) Data() scene.CameraData { return c.buf.Value() }

// Zoom moves the camera towards the origin by delta, see
// scene.CameraData.Zoom.
func (c *Camera) Zoom(delta float32) error {
	data := c.buf.Value()
	data.Zoom(delta)
	return c.buf.Update(data)
}

// Rotate turns the camera while rotation is enabled and does nothing
// otherwise.
func (c *Camera) Rotate(dPhi, dTheta scene.Radians) error {
	if !c.rotatable {
		return nil
	}
	data := c.buf.Value()
	data.Rotate(dPhi, dTheta)
	return c.buf.Update(data)
}

// SetRotatable enables or disables Rotate.
func (c *Camera) SetRotatable(enabled bool) { c.rotatable = enabled }

// Rotatable reports whether Rotate has an effect.
func (c *Camera) Rotatable() bool { return c.rotatable }

// Destroy releases the uniform buffer.
func (c *Camera) Destroy() { c.buf.Destroy() }

// motionAngles converts pointer motion to camera angle deltas. Moving right
// turns the scene with the pointer; moving down raises the camera.
func motionAngles(dx, dy float64) (dPhi, dTheta scene.Radians) {
	return scene.Radians(-dx * RotationSensitivity), scene.Radians(dy * RotationSensitivity)
}
