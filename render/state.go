// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/gui"
	"github.com/gogpu/raymarch/internal/group"
	"github.com/gogpu/raymarch/internal/packed"
	"github.com/gogpu/raymarch/internal/uniform"
	"github.com/gogpu/raymarch/scene"
)

// frameTimeout bounds the wait for the previous frame.
const frameTimeout = 5 * time.Second

// Phase is the lifecycle phase of a State.
type Phase uint8

// Lifecycle phases.
const (
	PhaseUninitialized Phase = iota
	PhaseActive
	PhaseDegraded
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseActive:
		return "Active"
	case PhaseDegraded:
		return "Degraded"
	case PhaseTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Panel is the settings overlay driven by the state. *gui.Panel implements
// it.
type Panel interface {
	HandleEvent(e event.Event)
	WantsPointerInput() bool
	Update(data *scene.GuiData, screen scene.ScreenData)
	Output() (gui.Output, error)
}

// State is the render state machine. It must be used from one goroutine.
type State struct {
	opts  raymarch.Options
	log   *slog.Logger
	phase Phase
	gui   scene.GuiData

	platform Platform
	panel    Panel
	surface  Surface
	device   *Device
	format   gputypes.TextureFormat

	screen   *uniform.Buffer[scene.ScreenData]
	camera   *Camera
	options  *uniform.Buffer[scene.OptionsData]
	group    *group.Group
	programs *Programs
	overlay  *Overlay

	pendingScreen scene.ScreenData
	fence         hal.Fence
	submitted     uint64
	inFlight      hal.CommandBuffer
	pendingFree   []gui.TextureID
}

// NewState returns an Uninitialized state.
func NewState(opts raymarch.Options, panel Panel) *State {
	return &State{
		opts:  opts,
		log:   raymarch.ComponentLogger("render"),
		gui:   opts.Scene,
		panel: panel,
	}
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Gui returns the current panel settings.
func (s *State) Gui() scene.GuiData { return s.gui }

// Screen returns the current screen data.
func (s *State) Screen() scene.ScreenData {
	if s.screen == nil {
		return s.pendingScreen
	}
	return s.screen.Value()
}

// Camera returns the camera controller, or nil before Resume.
func (s *State) Camera() *Camera { return s.camera }

// Rotating reports whether pointer motion currently orbits the camera.
func (s *State) Rotating() bool {
	return s.running() && s.camera != nil && s.camera.Rotatable()
}

// Device returns the open device, or nil before Resume.
func (s *State) Device() *Device { return s.device }

// Resume initializes the state on p. It blocks until the device and every
// GPU resource exist. Calling it when the state is not Uninitialized does
// nothing. A failure terminates the state and returns an *InitError.
func (s *State) Resume(p Platform) error {
	if s.phase != PhaseUninitialized {
		return nil
	}
	s.platform = p
	w, h := p.Size()
	s.pendingScreen = scene.ScreenData{Width: w, Height: h}

	surface, err := p.CreateSurface()
	if err != nil {
		return s.initFailed(StageSurface, err)
	}
	s.surface = surface

	adapter := SelectAdapter(p.Adapters(surface), s.opts.PowerPreference)
	if adapter == nil {
		return s.initFailed(StageAdapter, ErrNoAdapter)
	}
	s.log.Info("adapter selected", "name", adapter.Info.Name, "type", adapter.Info.DeviceType)

	dev, err := OpenDevice(adapter, s.opts.RequiredFeatures, s.opts.RequiredLimits)
	if err != nil {
		return s.initFailed(StageDevice, err)
	}
	s.device = dev
	s.format = surface.Format()

	if err := s.configure(); err != nil {
		return s.initFailed(StageSurface, err)
	}
	if err := s.createResources(); err != nil {
		return s.initFailed(StageResources, err)
	}

	s.phase = PhaseActive
	s.log.Info("render state active", "width", w, "height", h, "format", s.format)
	p.RequestRedraw()
	return nil
}

func (s *State) initFailed(stage Stage, err error) error {
	s.release()
	s.phase = PhaseTerminated
	return &InitError{Stage: stage, Err: err}
}

func (s *State) createResources() error {
	d, q := s.device.Device, s.device.Queue
	var err error

	if s.screen, err = uniform.New(d, q, packed.Screen, s.pendingScreen, ""); err != nil {
		return err
	}
	if s.camera, err = NewCamera(d, q, s.opts.Camera); err != nil {
		return err
	}
	if s.options, err = uniform.New(d, q, packed.Options, scene.OptionsFromGui(s.gui), ""); err != nil {
		return err
	}
	s.group, err = group.NewFixed(d, group.FixedDescriptor{
		Label:     "scene",
		Resources: []group.Resource{s.screen, s.camera.buf, s.options},
		Entry:     group.FragmentUniform,
	})
	if err != nil {
		return err
	}
	if s.programs, err = NewPrograms(d, s.group.Layout, s.format); err != nil {
		return err
	}
	if s.overlay, err = NewOverlay(d, q, s.format); err != nil {
		return err
	}
	if s.fence, err = d.CreateFence(); err != nil {
		return fmt.Errorf("create frame fence: %w", err)
	}
	return nil
}

// configure applies the current screen size to the surface. An empty
// screen leaves the surface as it is.
func (s *State) configure() error {
	screen := s.Screen()
	if screen.Empty() {
		return nil
	}
	return s.surface.Configure(s.device.Device, SurfaceConfig{
		Width:       screen.Width,
		Height:      screen.Height,
		Format:      s.format,
		PresentMode: s.opts.PresentMode,
	})
}

func (s *State) running() bool {
	return s.phase == PhaseActive || s.phase == PhaseDegraded
}

// HandleEvent routes one input event. Only fatal errors are returned.
func (s *State) HandleEvent(e event.Event) error {
	if s.panel != nil {
		s.panel.HandleEvent(e)
	}
	if !s.running() {
		return nil
	}
	switch e := e.(type) {
	case event.Resized:
		return s.Resize(e.Width, e.Height)
	case event.PointerButton:
		if e.Button == event.ButtonPrimary {
			s.camera.SetRotatable(e.Pressed && !s.panelWantsPointer())
		}
	case event.Scrolled:
		return s.fatal(s.camera.Zoom(float32(e.Lines() * ZoomPerLine)))
	case event.MotionDelta:
		return s.fatal(s.camera.Rotate(motionAngles(e.DX, e.DY)))
	case event.RedrawRequested:
		return s.RenderFrame()
	}
	return nil
}

func (s *State) panelWantsPointer() bool {
	return s.panel != nil && s.panel.WantsPointerInput()
}

// Resize reconfigures the surface for a new framebuffer size. Zero
// dimensions are ignored.
func (s *State) Resize(width, height uint32) error {
	if width == 0 || height == 0 || !s.running() {
		return nil
	}
	screen := scene.ScreenData{Width: width, Height: height}
	if err := s.screen.Update(screen); err != nil {
		return s.fatal(err)
	}
	if err := s.configure(); err != nil {
		return s.fatal(fmt.Errorf("reconfigure surface: %w", err))
	}
	s.log.Debug("resized", "width", width, "height", height)
	s.platform.RequestRedraw()
	return nil
}

// RenderFrame draws and presents one frame. Recoverable surface errors
// and timeouts skip the frame and return nil; anything else terminates the
// state.
func (s *State) RenderFrame() error {
	if !s.running() {
		return ErrNotActive
	}
	if s.Screen().Empty() {
		return nil
	}
	if err := s.waitInFlight(); err != nil {
		return s.surfaceFailure(err)
	}

	image, err := s.surface.Acquire()
	if err != nil {
		return s.surfaceFailure(err)
	}

	free, err := s.record(image.View())
	if err != nil {
		s.surface.Discard(image)
		return s.fatal(err)
	}
	s.pendingFree = append(s.pendingFree, free...)
	if err := s.surface.Present(s.device.Queue, image); err != nil {
		return s.surfaceFailure(err)
	}

	if image.Suboptimal() {
		s.log.Debug("surface suboptimal, reconfiguring")
		if err := s.configure(); err != nil {
			return s.fatal(err)
		}
	}
	if s.phase == PhaseDegraded {
		s.log.Info("surface recovered")
	}
	s.phase = PhaseActive
	s.platform.RequestRedraw()
	return nil
}

// record runs the panel, uploads the options and submits the frame. It
// returns the panel textures to free once the frame has completed.
func (s *State) record(target hal.TextureView) ([]gui.TextureID, error) {
	out := gui.Output{}
	if s.panel != nil {
		s.panel.Update(&s.gui, s.Screen())
		var err error
		if out, err = s.panel.Output(); err != nil {
			return nil, err
		}
	}
	if err := s.options.Update(scene.OptionsFromGui(s.gui)); err != nil {
		return nil, err
	}
	if err := s.overlay.Prepare(out, s.Screen()); err != nil {
		return nil, err
	}

	d := s.device.Device
	encoder, err := d.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frame_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	rp.SetPipeline(s.programs.For(s.gui.FractalGroup))
	rp.SetBindGroup(0, s.group.Bind, nil)
	rp.Draw(3, 1, 0, 0)
	s.overlay.Record(rp)
	rp.End()

	cmd, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	next := s.submitted + 1
	if err := s.device.Queue.Submit([]hal.CommandBuffer{cmd}, s.fence, next); err != nil {
		d.FreeCommandBuffer(cmd)
		return nil, fmt.Errorf("submit: %w", err)
	}
	s.submitted = next
	s.inFlight = cmd
	return out.Textures.Free, nil
}

// waitInFlight waits for the previous submission, then frees its command
// buffer and the panel textures it was the last to sample.
func (s *State) waitInFlight() error {
	if s.inFlight == nil {
		return nil
	}
	ok, err := s.device.Device.Wait(s.fence, s.submitted, frameTimeout)
	if err != nil {
		return fmt.Errorf("wait for previous frame: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: previous frame still running", ErrSurfaceTimeout)
	}
	s.device.Device.FreeCommandBuffer(s.inFlight)
	s.inFlight = nil
	s.overlay.Free(s.pendingFree)
	s.pendingFree = s.pendingFree[:0]
	return nil
}

// surfaceFailure classifies err. Outdated and lost surfaces are
// reconfigured and the state becomes Degraded; timeouts skip the frame.
func (s *State) surfaceFailure(err error) error {
	switch {
	case recoverable(err):
		s.log.Warn("surface needs reconfiguration", "error", err)
		s.phase = PhaseDegraded
		if err := s.configure(); err != nil {
			return s.fatal(fmt.Errorf("reconfigure surface: %w", err))
		}
		s.platform.RequestRedraw()
		return nil
	case errors.Is(err, ErrSurfaceTimeout):
		s.log.Warn("frame skipped", "error", err)
		s.platform.RequestRedraw()
		return nil
	default:
		return s.fatal(err)
	}
}

// fatal terminates the state when err is not nil.
func (s *State) fatal(err error) error {
	if err == nil {
		return nil
	}
	s.log.Error("render state terminated", "error", err)
	s.release()
	s.phase = PhaseTerminated
	return err
}

// Close terminates the state and releases the GPU resources, then the
// surface, then the device. The window may be destroyed after Close
// returns. Close is idempotent.
func (s *State) Close() {
	if s.phase != PhaseTerminated {
		s.log.Debug("closing render state")
	}
	s.release()
	s.phase = PhaseTerminated
}

func (s *State) release() {
	if s.device != nil && s.inFlight != nil {
		if _, err := s.device.Device.Wait(s.fence, s.submitted, frameTimeout); err != nil {
			s.log.Warn("wait for last frame", "error", err)
		}
		s.device.Device.FreeCommandBuffer(s.inFlight)
		s.inFlight = nil
	}
	if s.overlay != nil {
		s.overlay.Destroy()
		s.overlay = nil
	}
	if s.programs != nil {
		s.programs.Destroy()
		s.programs = nil
	}
	if s.group != nil {
		s.group.Destroy()
		s.group = nil
	}
	if s.options != nil {
		s.options.Destroy()
		s.options = nil
	}
	if s.camera != nil {
		s.camera.Destroy()
		s.camera = nil
	}
	if s.screen != nil {
		s.pendingScreen = s.screen.Value()
		s.screen.Destroy()
		s.screen = nil
	}
	if s.fence != nil {
		s.device.Device.DestroyFence(s.fence)
		s.fence = nil
	}
	if s.surface != nil {
		var d hal.Device
		if s.device != nil {
			d = s.device.Device
		}
		s.surface.Release(d)
		s.surface = nil
	}
	if s.device != nil {
		s.device.Destroy()
		s.device = nil
	}
}
