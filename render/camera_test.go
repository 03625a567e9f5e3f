// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/raymarch/scene"
)

func TestCameraController(t *testing.T) {
	device, queue := createNoopDevice(t)
	cam, err := NewCamera(device, queue, scene.DefaultCamera())
	if err != nil {
		t.Fatal(err)
	}
	defer cam.Destroy()

	if err := cam.Rotate(1, 1); err != nil {
		t.Fatal(err)
	}
	if cam.Data().Angles != (scene.Angles{}) {
		t.Error("Rotate changed the camera while rotation was disabled")
	}

	cam.SetRotatable(true)
	if err := cam.Rotate(1, 0.5); err != nil {
		t.Fatal(err)
	}
	if got := cam.Data().Angles; got != (scene.Angles{Phi: 1, Theta: 0.5}) {
		t.Errorf("Angles = %+v", got)
	}

	if err := cam.Zoom(100); err != nil {
		t.Fatal(err)
	}
	if d := cam.Data().OriginDistance; d != scene.DefaultMinDistance {
		t.Errorf("OriginDistance = %v, want %v", d, float32(scene.DefaultMinDistance))
	}
}

func TestMotionAngles(t *testing.T) {
	dPhi, dTheta := motionAngles(200, -100)
	if dPhi != -1 || dTheta != -0.5 {
		t.Errorf("motionAngles(200, -100) = %v, %v", dPhi, dTheta)
	}
}
