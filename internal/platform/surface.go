// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/render"
)

// surfaceFormat is requested for every window. The fractal programs encode
// sRGB themselves.
const surfaceFormat = gputypes.TextureFormatBGRA8Unorm

// surface adapts a HAL surface to render.Surface.
type surface struct {
	raw    hal.Surface
	device hal.Device
}

type surfaceImage struct {
	tex        hal.SurfaceTexture
	view       hal.TextureView
	suboptimal bool
}

func (i *surfaceImage) View() hal.TextureView { return i.view }
func (i *surfaceImage) Suboptimal() bool      { return i.suboptimal }

func (s *surface) Format() gputypes.TextureFormat { return surfaceFormat }

func (s *surface) Configure(device hal.Device, cfg render.SurfaceConfig) error {
	err := s.raw.Configure(device, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: presentMode(cfg.PresentMode),
		AlphaMode:   hal.CompositeAlphaModeOpaque,
	})
	if err != nil {
		return fmt.Errorf("configure surface %dx%d: %w", cfg.Width, cfg.Height, classify(err))
	}
	s.device = device
	return nil
}

func (s *surface) Acquire() (render.SurfaceImage, error) {
	acquired, err := s.raw.AcquireTexture(nil)
	if err != nil {
		return nil, classify(err)
	}
	view, err := s.device.CreateTextureView(acquired.Texture, &hal.TextureViewDescriptor{
		Label: "surface_view",
	})
	if err != nil {
		s.raw.DiscardTexture(acquired.Texture)
		return nil, fmt.Errorf("create surface view: %w", err)
	}
	return &surfaceImage{tex: acquired.Texture, view: view, suboptimal: acquired.Suboptimal}, nil
}

func (s *surface) Present(queue hal.Queue, image render.SurfaceImage) error {
	img := image.(*surfaceImage)
	defer s.device.DestroyTextureView(img.view)
	if err := queue.Present(s.raw, img.tex); err != nil {
		return classify(err)
	}
	return nil
}

func (s *surface) Discard(image render.SurfaceImage) {
	img := image.(*surfaceImage)
	s.device.DestroyTextureView(img.view)
	s.raw.DiscardTexture(img.tex)
}

func (s *surface) Release(device hal.Device) {
	if device != nil && s.device != nil {
		s.raw.Unconfigure(device)
	}
	s.raw.Destroy()
	s.device = nil
}

// classify maps HAL surface errors to the render sentinels. Unknown errors
// are returned unchanged and are fatal to the render state.
func classify(err error) error {
	switch {
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", render.ErrSurfaceOutdated, err)
	case errors.Is(err, hal.ErrSurfaceLost):
		return fmt.Errorf("%w: %w", render.ErrSurfaceLost, err)
	case errors.Is(err, hal.ErrTimeout):
		return fmt.Errorf("%w: %w", render.ErrSurfaceTimeout, err)
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return fmt.Errorf("%w: %w", render.ErrOutOfMemory, err)
	default:
		return err
	}
}

func presentMode(m raymarch.PresentMode) hal.PresentMode {
	switch m {
	case raymarch.PresentMailbox:
		return hal.PresentModeMailbox
	case raymarch.PresentImmediate:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}
