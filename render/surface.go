// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
)

// SurfaceConfig is applied by Surface.Configure.
type SurfaceConfig struct {
	Width, Height uint32
	Format        gputypes.TextureFormat
	PresentMode   raymarch.PresentMode
}

// SurfaceImage is an acquired swapchain image.
type SurfaceImage interface {
	// View is the render attachment for this frame.
	View() hal.TextureView

	// Suboptimal reports that presentation still works but the surface
	// should be reconfigured.
	Suboptimal() bool
}

// Surface is the presentable target of a window.
//
// Acquire and Present report failures with ErrSurfaceOutdated,
// ErrSurfaceLost, ErrSurfaceTimeout or ErrOutOfMemory where they apply.
type Surface interface {
	// Format returns the texture format the surface is configured with.
	Format() gputypes.TextureFormat

	Configure(device hal.Device, cfg SurfaceConfig) error
	Acquire() (SurfaceImage, error)
	Present(queue hal.Queue, image SurfaceImage) error

	// Discard returns an acquired image without presenting it.
	Discard(image SurfaceImage)

	// Release unconfigures the surface and destroys it. device is nil when
	// no device was opened.
	Release(device hal.Device)
}

// Platform provides what Resume needs from the windowing system.
type Platform interface {
	// Size returns the current framebuffer size in pixels.
	Size() (width, height uint32)

	CreateSurface() (Surface, error)

	// Adapters lists the adapters able to present to surface.
	Adapters(surface Surface) []hal.ExposedAdapter

	// RequestRedraw schedules a RedrawRequested event.
	RequestRedraw()
}
