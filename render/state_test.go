// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/gui"
	"github.com/gogpu/raymarch/scene"
)

func TestResume(t *testing.T) {
	s, p, _ := newActiveState(t)

	if s.Phase() != PhaseActive {
		t.Fatalf("Phase() = %v, want Active", s.Phase())
	}
	if got := s.Screen(); got != (scene.ScreenData{Width: 800, Height: 600}) {
		t.Errorf("Screen() = %+v", got)
	}
	if len(p.surface.configs) != 1 {
		t.Fatalf("surface configured %d times, want 1", len(p.surface.configs))
	}
	cfg := p.surface.configs[0]
	if cfg.Width != 800 || cfg.Height != 600 || cfg.PresentMode != raymarch.PresentFifo {
		t.Errorf("config = %+v", cfg)
	}
	if p.redraws != 1 {
		t.Errorf("redraws = %d, want 1", p.redraws)
	}
	if s.Camera().Data() != scene.DefaultCamera() {
		t.Errorf("camera = %+v, want default", s.Camera().Data())
	}
	if s.Device() == nil || s.Device().Caps.AdapterName == "" {
		t.Error("device capabilities not recorded")
	}
}

func TestResumeTwice(t *testing.T) {
	s, p, _ := newActiveState(t)
	if err := s.Resume(p); err != nil {
		t.Fatalf("second Resume: %v", err)
	}
	if len(p.surface.configs) != 1 {
		t.Errorf("second Resume reconfigured the surface")
	}
}

func TestResumeFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *fakePlatform)
		stage   Stage
		wantErr error
	}{
		{"surface", func(p *fakePlatform) { p.surfaceErr = errScripted }, StageSurface, errScripted},
		{"adapter", func(p *fakePlatform) { p.noAdapters = true }, StageAdapter, ErrNoAdapter},
		{"configure", func(p *fakePlatform) { p.surface.configureErr = errScripted }, StageSurface, errScripted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakePlatform(t)
			tt.setup(p)
			s := NewState(raymarch.DefaultOptions(), &fakePanel{})

			err := s.Resume(p)
			var initErr *InitError
			if !errors.As(err, &initErr) {
				t.Fatalf("Resume() error = %v, want *InitError", err)
			}
			if initErr.Stage != tt.stage {
				t.Errorf("Stage = %v, want %v", initErr.Stage, tt.stage)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
			if s.Phase() != PhaseTerminated {
				t.Errorf("Phase() = %v, want Terminated", s.Phase())
			}
			if err := s.Resume(p); err != nil {
				t.Errorf("Resume after failure = %v, want no-op", err)
			}
		})
	}
}

func TestRenderFrameBeforeResume(t *testing.T) {
	s := NewState(raymarch.DefaultOptions(), &fakePanel{})
	if err := s.RenderFrame(); !errors.Is(err, ErrNotActive) {
		t.Errorf("RenderFrame() = %v, want ErrNotActive", err)
	}
}

func TestResizeZeroIgnored(t *testing.T) {
	s, p, _ := newActiveState(t)
	before := s.Screen()

	for _, size := range [][2]uint32{{0, 600}, {800, 0}, {0, 0}} {
		if err := s.HandleEvent(event.Resized{Width: size[0], Height: size[1]}); err != nil {
			t.Fatalf("Resize(%v): %v", size, err)
		}
	}
	if s.Screen() != before {
		t.Errorf("Screen() = %+v, want unchanged %+v", s.Screen(), before)
	}
	if len(p.surface.configs) != 1 {
		t.Errorf("surface reconfigured on a zero size")
	}
}

func TestResize(t *testing.T) {
	s, p, _ := newActiveState(t)
	redraws := p.redraws

	if err := s.HandleEvent(event.Resized{Width: 1024, Height: 768}); err != nil {
		t.Fatal(err)
	}
	want := scene.ScreenData{Width: 1024, Height: 768}
	if s.Screen() != want {
		t.Errorf("Screen() = %+v, want %+v", s.Screen(), want)
	}
	last := p.surface.configs[len(p.surface.configs)-1]
	if last.Width != 1024 || last.Height != 768 {
		t.Errorf("last config = %+v", last)
	}
	if p.redraws != redraws+1 {
		t.Error("resize did not request a redraw")
	}
}

func TestZoomScenario(t *testing.T) {
	s, _, _ := newActiveState(t)

	if err := s.HandleEvent(event.Scrolled{Delta: -10, Unit: event.ScrollLines}); err != nil {
		t.Fatal(err)
	}
	if d := s.Camera().Data().OriginDistance; d != 15 {
		t.Errorf("after zooming out: distance = %v, want 15", d)
	}
	if err := s.HandleEvent(event.Scrolled{Delta: 20, Unit: event.ScrollLines}); err != nil {
		t.Fatal(err)
	}
	if d := s.Camera().Data().OriginDistance; d != 2 {
		t.Errorf("after zooming in: distance = %v, want 2", d)
	}
}

func TestRotationFollowsPrimaryButton(t *testing.T) {
	s, _, _ := newActiveState(t)
	start := s.Camera().Data().Angles

	_ = s.HandleEvent(event.MotionDelta{DX: 100, DY: 50})
	if s.Camera().Data().Angles != start {
		t.Error("camera rotated without a pressed button")
	}

	_ = s.HandleEvent(event.PointerButton{Button: event.ButtonPrimary, Pressed: true})
	if !s.Rotating() {
		t.Error("Rotating() = false while the primary button is held")
	}
	_ = s.HandleEvent(event.MotionDelta{DX: 100, DY: 50})
	got := s.Camera().Data().Angles
	wantPhi, wantTheta := motionAngles(100, 50)
	want := scene.Angles{Phi: wantPhi.Standardize(), Theta: wantTheta}
	if !got.Equal(want) {
		t.Errorf("angles = %+v, want %+v", got, want)
	}

	_ = s.HandleEvent(event.PointerButton{Button: event.ButtonPrimary, Pressed: false})
	if s.Rotating() {
		t.Error("Rotating() = true after release")
	}
	_ = s.HandleEvent(event.MotionDelta{DX: 100, DY: 50})
	if s.Camera().Data().Angles != got {
		t.Error("camera rotated after the button was released")
	}
}

func TestRotationBlockedByPanel(t *testing.T) {
	s, _, panel := newActiveState(t)
	panel.wants = true
	start := s.Camera().Data().Angles

	_ = s.HandleEvent(event.PointerButton{Button: event.ButtonPrimary, Pressed: true})
	_ = s.HandleEvent(event.MotionDelta{DX: 100, DY: 50})
	if s.Camera().Data().Angles != start {
		t.Error("camera rotated while the panel wanted the pointer")
	}
	if s.Rotating() {
		t.Error("Rotating() = true for a press on the panel")
	}
	if len(panel.events) != 2 {
		t.Errorf("panel received %d events, want 2", len(panel.events))
	}
}

func TestSecondaryButtonDoesNotRotate(t *testing.T) {
	s, _, _ := newActiveState(t)
	_ = s.HandleEvent(event.PointerButton{Button: event.ButtonSecondary, Pressed: true})
	if s.Camera().Rotatable() {
		t.Error("secondary button enabled rotation")
	}
}

func TestRenderFrame(t *testing.T) {
	s, p, panel := newActiveState(t)
	redraws := p.redraws

	for range 3 {
		if err := s.HandleEvent(event.RedrawRequested{}); err != nil {
			t.Fatalf("RenderFrame: %v", err)
		}
	}
	if s.Phase() != PhaseActive {
		t.Errorf("Phase() = %v, want Active", s.Phase())
	}
	if panel.updates != 3 {
		t.Errorf("panel updated %d times, want 3", panel.updates)
	}
	if s.Gui().MaxIterations != 42 {
		t.Errorf("panel edit lost: MaxIterations = %d", s.Gui().MaxIterations)
	}
	if got := s.options.Value(); got != scene.OptionsFromGui(s.Gui()) {
		t.Errorf("options uniform = %+v, want %+v", got, scene.OptionsFromGui(s.Gui()))
	}
	if p.surface.presented != 3 {
		t.Errorf("presented %d frames, want 3", p.surface.presented)
	}
	if p.redraws != redraws+3 {
		t.Errorf("redraws = %d, want %d", p.redraws, redraws+3)
	}
}

func TestOutdatedSurfaceRecovers(t *testing.T) {
	for _, surfaceErr := range []error{ErrSurfaceOutdated, ErrSurfaceLost} {
		t.Run(surfaceErr.Error(), func(t *testing.T) {
			s, p, _ := newActiveState(t)
			p.surface.acquireErrs = []error{surfaceErr}

			if err := s.RenderFrame(); err != nil {
				t.Fatalf("RenderFrame() = %v, want recovery", err)
			}
			if s.Phase() != PhaseDegraded {
				t.Errorf("Phase() = %v, want Degraded", s.Phase())
			}
			if len(p.surface.configs) != 2 {
				t.Errorf("surface configured %d times, want 2", len(p.surface.configs))
			}
			if p.surface.presented != 0 {
				t.Error("a frame was presented from a failed acquire")
			}

			if err := s.RenderFrame(); err != nil {
				t.Fatalf("second RenderFrame() = %v", err)
			}
			if s.Phase() != PhaseActive {
				t.Errorf("Phase() = %v, want Active", s.Phase())
			}
		})
	}
}

func TestPresentOutdatedRecovers(t *testing.T) {
	s, p, _ := newActiveState(t)
	p.surface.presentErrs = []error{ErrSurfaceOutdated}

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if s.Phase() != PhaseDegraded {
		t.Errorf("Phase() = %v, want Degraded", s.Phase())
	}
}

func TestTimeoutSkipsFrame(t *testing.T) {
	s, p, panel := newActiveState(t)
	p.surface.acquireErrs = []error{ErrSurfaceTimeout}

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame() = %v, want nil", err)
	}
	if s.Phase() != PhaseActive {
		t.Errorf("Phase() = %v, want Active", s.Phase())
	}
	if len(p.surface.configs) != 1 {
		t.Error("timeout reconfigured the surface")
	}
	if panel.updates != 0 {
		t.Error("panel ran for a skipped frame")
	}
}

func TestFatalSurfaceError(t *testing.T) {
	for _, surfaceErr := range []error{ErrOutOfMemory, errScripted} {
		t.Run(surfaceErr.Error(), func(t *testing.T) {
			s, p, _ := newActiveState(t)
			p.surface.acquireErrs = []error{surfaceErr}

			err := s.RenderFrame()
			if !errors.Is(err, surfaceErr) {
				t.Fatalf("RenderFrame() = %v, want %v", err, surfaceErr)
			}
			if s.Phase() != PhaseTerminated {
				t.Errorf("Phase() = %v, want Terminated", s.Phase())
			}
			if p.surface.released != 1 {
				t.Errorf("surface released %d times, want 1", p.surface.released)
			}
			if err := s.RenderFrame(); !errors.Is(err, ErrNotActive) {
				t.Errorf("RenderFrame after termination = %v, want ErrNotActive", err)
			}
		})
	}
}

func TestPanelErrorDiscardsImage(t *testing.T) {
	s, p, panel := newActiveState(t)
	panel.err = gui.ErrPanelUnconfigured

	err := s.RenderFrame()
	if !errors.Is(err, gui.ErrPanelUnconfigured) {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if p.surface.discarded != 1 || p.surface.presented != 0 {
		t.Errorf("discarded=%d presented=%d, want 1/0", p.surface.discarded, p.surface.presented)
	}
}

func TestSuboptimalReconfigures(t *testing.T) {
	s, p, _ := newActiveState(t)
	p.surface.suboptimal = true

	if err := s.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if p.surface.presented != 1 || len(p.surface.configs) != 2 {
		t.Errorf("presented=%d configs=%d, want 1/2", p.surface.presented, len(p.surface.configs))
	}
}

func TestClose(t *testing.T) {
	s, p, _ := newActiveState(t)
	if err := s.RenderFrame(); err != nil {
		t.Fatal(err)
	}

	s.Close()
	s.Close()
	if s.Phase() != PhaseTerminated {
		t.Errorf("Phase() = %v, want Terminated", s.Phase())
	}
	if p.surface.released != 1 {
		t.Errorf("surface released %d times, want 1", p.surface.released)
	}
	if s.Device() != nil {
		t.Error("device survived Close")
	}
	if s.Rotating() {
		t.Error("Rotating() = true after Close")
	}
	if err := s.HandleEvent(event.Scrolled{Delta: 1}); err != nil {
		t.Errorf("event after Close = %v, want ignored", err)
	}
}

func TestRenderWithPanel(t *testing.T) {
	panel, err := gui.New()
	if err != nil {
		t.Fatal(err)
	}
	p := newFakePlatform(t)
	s := NewState(raymarch.DefaultOptions(), panel)
	if err := s.Resume(p); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if s.overlay.Textures() != 1 {
		t.Errorf("overlay holds %d textures, want 1", s.overlay.Textures())
	}

	// A smaller window replaces the panel texture; the old one is freed
	// once the frame that last used it has completed.
	if err := s.Resize(800, 300); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := s.RenderFrame(); err != nil {
			t.Fatal(err)
		}
	}
	if s.overlay.Textures() != 1 {
		t.Errorf("overlay holds %d textures after resize, want 1", s.overlay.Textures())
	}
}
