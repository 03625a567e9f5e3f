package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/render"
)

// fakeWindow replays one batch of events per Poll. After the script runs
// out it returns nothing.
type fakeWindow struct {
	batches   [][]event.Event
	polls     int
	destroyed bool
	captures  []bool
	log       *[]string
	onPoll    func()
}

func (w *fakeWindow) Size() (uint32, uint32)                       { return 640, 480 }
func (w *fakeWindow) CreateSurface() (render.Surface, error)       { return nil, errors.New("unused") }
func (w *fakeWindow) Adapters(render.Surface) []hal.ExposedAdapter { return nil }
func (w *fakeWindow) RequestRedraw()                               {}

func (w *fakeWindow) Poll() []event.Event {
	w.polls++
	if w.onPoll != nil {
		w.onPoll()
	}
	if len(w.batches) == 0 {
		return nil
	}
	b := w.batches[0]
	w.batches = w.batches[1:]
	return b
}

func (w *fakeWindow) CapturePointer(on bool) {
	w.captures = append(w.captures, on)
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	*w.log = append(*w.log, "window")
}

type fakeRenderer struct {
	resumeErr error
	failOn    event.Event
	failErr   error
	handled   []event.Event
	rotating  bool
	closed    bool
	log       *[]string
}

func (r *fakeRenderer) Resume(render.Platform) error { return r.resumeErr }

func (r *fakeRenderer) HandleEvent(e event.Event) error {
	r.handled = append(r.handled, e)
	if b, ok := e.(event.PointerButton); ok && b.Button == event.ButtonPrimary {
		r.rotating = b.Pressed
	}
	if r.failOn != nil && e == r.failOn {
		return r.failErr
	}
	return nil
}

func (r *fakeRenderer) Rotating() bool { return r.rotating }

func (r *fakeRenderer) Close() {
	r.closed = true
	*r.log = append(*r.log, "renderer")
}

func newFakes(batches ...[]event.Event) (*fakeWindow, *fakeRenderer, *[]string) {
	var order []string
	return &fakeWindow{batches: batches, log: &order}, &fakeRenderer{log: &order}, &order
}

func TestRunStopsOnCloseRequested(t *testing.T) {
	win, r, order := newFakes(
		[]event.Event{event.Resized{Width: 10, Height: 10}, event.RedrawRequested{}},
		[]event.Event{event.CloseRequested{}, event.RedrawRequested{}},
	)
	if err := New(win, r).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []event.Event{event.Resized{Width: 10, Height: 10}, event.RedrawRequested{}}
	if !reflect.DeepEqual(r.handled, want) {
		t.Errorf("handled = %v, want %v", r.handled, want)
	}
	if !reflect.DeepEqual(*order, []string{"renderer", "window"}) {
		t.Errorf("shutdown order = %v, want renderer then window", *order)
	}
}

func TestRunStopsOnExitKey(t *testing.T) {
	win, r, _ := newFakes(
		[]event.Event{event.KeyPressed{Key: gpucontext.KeySpace}},
		[]event.Event{event.KeyPressed{Key: gpucontext.KeyEscape}},
	)
	if err := New(win, r).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(r.handled) != 1 {
		t.Errorf("handled %d events, want 1 (the escape key is not forwarded)", len(r.handled))
	}
	if !r.closed || !win.destroyed {
		t.Error("renderer and window should be released")
	}
}

func TestRunCapturesPointerWhileRotating(t *testing.T) {
	win, r, _ := newFakes(
		[]event.Event{
			event.PointerButton{Button: event.ButtonPrimary, Pressed: true},
			event.MotionDelta{DX: 4, DY: 2},
		},
		[]event.Event{
			event.PointerButton{Button: event.ButtonPrimary, Pressed: false},
			event.CloseRequested{},
		},
	)
	if err := New(win, r).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []bool{true, false, false}
	if !reflect.DeepEqual(win.captures, want) {
		t.Errorf("captures = %v, want %v (press, release, shutdown)", win.captures, want)
	}
}

func TestRunResumeFailure(t *testing.T) {
	win, r, _ := newFakes()
	initErr := &render.InitError{Stage: render.StageAdapter, Err: render.ErrNoAdapter}
	r.resumeErr = initErr

	err := New(win, r).Run(context.Background())
	var target *render.InitError
	if !errors.As(err, &target) || target.Stage != render.StageAdapter {
		t.Fatalf("Run = %v, want InitError at adapter stage", err)
	}
	if !errors.Is(err, render.ErrNoAdapter) {
		t.Errorf("Run = %v, want ErrNoAdapter in the chain", err)
	}
	if win.polls != 0 {
		t.Errorf("polled %d times after a failed resume", win.polls)
	}
	if !r.closed || !win.destroyed {
		t.Error("renderer and window should be released")
	}
}

func TestRunFatalRenderError(t *testing.T) {
	win, r, _ := newFakes(
		[]event.Event{event.RedrawRequested{}, event.Resized{Width: 1, Height: 1}},
	)
	r.failOn = event.RedrawRequested{}
	r.failErr = render.ErrOutOfMemory

	err := New(win, r).Run(context.Background())
	if !errors.Is(err, render.ErrOutOfMemory) {
		t.Fatalf("Run = %v, want ErrOutOfMemory", err)
	}
	if len(r.handled) != 1 {
		t.Errorf("handled %d events after the failure, want 1", len(r.handled))
	}
}

func TestRunContextCancelled(t *testing.T) {
	win, r, _ := newFakes()
	ctx, cancel := context.WithCancel(context.Background())
	win.onPoll = func() {
		if win.polls == 3 {
			cancel()
		}
	}

	if err := New(win, r).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if win.polls != 3 {
		t.Errorf("polls = %d, want 3", win.polls)
	}
	if !r.closed || !win.destroyed {
		t.Error("renderer and window should be released")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		e    event.Event
		want bool
	}{
		{event.CloseRequested{}, true},
		{event.KeyPressed{Key: gpucontext.KeyEscape}, true},
		{event.KeyPressed{Key: gpucontext.KeySpace}, false},
		{event.RedrawRequested{}, false},
		{event.Scrolled{Delta: 1, Unit: event.ScrollLines}, false},
	}
	for _, tt := range tests {
		if got := quit(tt.e); got != tt.want {
			t.Errorf("quit(%#v) = %v, want %v", tt.e, got, tt.want)
		}
	}
}
