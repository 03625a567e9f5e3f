// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/gui"
	"github.com/gogpu/raymarch/scene"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// fakeImage is an acquired image backed by a noop texture view.
type fakeImage struct {
	view       hal.TextureView
	suboptimal bool
}

func (i *fakeImage) View() hal.TextureView { return i.view }
func (i *fakeImage) Suboptimal() bool      { return i.suboptimal }

// fakeSurface replays scripted acquire and present errors.
type fakeSurface struct {
	device hal.Device
	tex    hal.Texture
	view   hal.TextureView

	configs      []SurfaceConfig
	acquireErrs  []error
	presentErrs  []error
	suboptimal   bool
	acquired     int
	presented    int
	discarded    int
	released     int
	configureErr error
}

func (s *fakeSurface) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func (s *fakeSurface) Configure(device hal.Device, cfg SurfaceConfig) error {
	if s.configureErr != nil {
		return s.configureErr
	}
	s.configs = append(s.configs, cfg)
	if s.tex != nil {
		return nil
	}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "fake_surface",
		Size:          hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        cfg.Format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return err
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "fake_surface_view"})
	if err != nil {
		device.DestroyTexture(tex)
		return err
	}
	s.device, s.tex, s.view = device, tex, view
	return nil
}

func pop(errs *[]error) error {
	if len(*errs) == 0 {
		return nil
	}
	err := (*errs)[0]
	*errs = (*errs)[1:]
	return err
}

func (s *fakeSurface) Acquire() (SurfaceImage, error) {
	if err := pop(&s.acquireErrs); err != nil {
		return nil, err
	}
	s.acquired++
	return &fakeImage{view: s.view, suboptimal: s.suboptimal}, nil
}

func (s *fakeSurface) Present(hal.Queue, SurfaceImage) error {
	if err := pop(&s.presentErrs); err != nil {
		return err
	}
	s.presented++
	return nil
}

func (s *fakeSurface) Discard(SurfaceImage) { s.discarded++ }

func (s *fakeSurface) Release(device hal.Device) {
	s.released++
	if device != nil && s.view != nil {
		device.DestroyTextureView(s.view)
		device.DestroyTexture(s.tex)
		s.view, s.tex = nil, nil
	}
}

// fakePlatform hands out noop adapters.
type fakePlatform struct {
	width, height uint32
	surface       *fakeSurface
	surfaceErr    error
	noAdapters    bool
	redraws       int
	adapters      []hal.ExposedAdapter
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	t.Cleanup(instance.Destroy)
	return &fakePlatform{
		width:    800,
		height:   600,
		surface:  &fakeSurface{},
		adapters: instance.EnumerateAdapters(nil),
	}
}

func (p *fakePlatform) Size() (uint32, uint32) { return p.width, p.height }

func (p *fakePlatform) CreateSurface() (Surface, error) {
	if p.surfaceErr != nil {
		return nil, p.surfaceErr
	}
	return p.surface, nil
}

func (p *fakePlatform) Adapters(Surface) []hal.ExposedAdapter {
	if p.noAdapters {
		return nil
	}
	return p.adapters
}

func (p *fakePlatform) RequestRedraw() { p.redraws++ }

// fakePanel records calls and reports a fixed pointer interest.
type fakePanel struct {
	wants   bool
	events  []event.Event
	updates int
	err     error
	out     gui.Output
}

func (p *fakePanel) HandleEvent(e event.Event)   { p.events = append(p.events, e) }
func (p *fakePanel) WantsPointerInput() bool     { return p.wants }
func (p *fakePanel) Output() (gui.Output, error) { return p.out, p.err }

func (p *fakePanel) Update(data *scene.GuiData, _ scene.ScreenData) {
	p.updates++
	data.MaxIterations = 42
}

var errScripted = errors.New("scripted failure")

// newActiveState returns a resumed state on a fake platform. The state is
// closed when the test ends.
func newActiveState(t *testing.T) (*State, *fakePlatform, *fakePanel) {
	t.Helper()
	p := newFakePlatform(t)
	panel := &fakePanel{}
	s := NewState(raymarch.DefaultOptions(), panel)
	if err := s.Resume(p); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	t.Cleanup(s.Close)
	return s, p, panel
}
