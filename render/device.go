// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
)

// Device is an open logical device, its queue and what the renderer needs
// to know about the adapter behind it.
type Device struct {
	Device hal.Device
	Queue  hal.Queue
	Caps   DeviceCapabilities
}

// DeviceCapabilities describes the adapter a Device was opened on.
type DeviceCapabilities struct {
	// AdapterName is the driver-reported adapter name.
	AdapterName string

	// DeviceType tells discrete, integrated, virtual and CPU adapters apart.
	DeviceType gputypes.DeviceType

	// MaxTextureSize is the largest 2D texture dimension requested.
	MaxTextureSize uint32

	// MaxBindGroups is the number of bind groups a pipeline may use.
	MaxBindGroups uint32
}

// SelectAdapter picks the adapter matching pref. A discrete GPU is
// preferred for high performance and an integrated one for low power;
// otherwise the other kind, then the first adapter. It returns nil when
// adapters is empty.
func SelectAdapter(adapters []hal.ExposedAdapter, pref raymarch.PowerPreference) *hal.ExposedAdapter {
	order := [2]gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}
	if pref == raymarch.PowerLow {
		order[0], order[1] = order[1], order[0]
	}
	for _, want := range order {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	if len(adapters) == 0 {
		return nil
	}
	return &adapters[0]
}

// OpenDevice opens a device on adapter with the requested features and
// limits.
func OpenDevice(adapter *hal.ExposedAdapter, features gputypes.Features, limits gputypes.Limits) (*Device, error) {
	open, err := adapter.Adapter.Open(features, limits)
	if err != nil {
		return nil, fmt.Errorf("open device on %q: %w", adapter.Info.Name, err)
	}
	return &Device{
		Device: open.Device,
		Queue:  open.Queue,
		Caps: DeviceCapabilities{
			AdapterName:    adapter.Info.Name,
			DeviceType:     adapter.Info.DeviceType,
			MaxTextureSize: limits.MaxTextureDimension2D,
			MaxBindGroups:  limits.MaxBindGroups,
		},
	}, nil
}

// Destroy releases the device.
func (d *Device) Destroy() {
	if d.Device != nil {
		d.Device.Destroy()
		d.Device = nil
		d.Queue = nil
	}
}
