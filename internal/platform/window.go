// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // Vulkan backend registration

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/render"
)

// idleWait bounds how long Poll blocks when no redraw is pending.
const idleWait = 0.1

// ErrBackendUnavailable is returned when no Vulkan backend is registered.
var ErrBackendUnavailable = errors.New("platform: vulkan backend not available")

// Window is a GLFW window with a Vulkan HAL instance. It implements
// render.Platform. All methods must be called from the main thread.
type Window struct {
	win      *glfw.Window
	instance hal.Instance
	log      *slog.Logger

	tr       translator
	redraw   bool
	captured bool
}

var _ render.Platform = (*Window)(nil)

// NewWindow initializes GLFW and opens a window sized and titled from opts.
func NewWindow(opts raymarch.Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}

	instance, err := createInstance()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w := &Window{
		win:      win,
		instance: instance,
		log:      raymarch.ComponentLogger("platform"),
	}
	w.install()
	w.log.Info("window created", "width", opts.Width, "height", opts.Height)
	return w, nil
}

func createInstance() (hal.Instance, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrBackendUnavailable
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("platform: create instance: %w", err)
	}
	return instance, nil
}

func (w *Window) install() {
	w.updateScale()
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.updateScale()
		w.tr.framebufferSize(width, height)
	})
	w.win.SetSizeCallback(func(_ *glfw.Window, _, _ int) {
		w.updateScale()
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.tr.cursorPos(x, y)
	})
	w.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			w.tr.cursorLeft()
		}
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		w.tr.mouseButton(b, a)
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.tr.scroll(yoff)
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, _ glfw.ModifierKey) {
		w.tr.key(k, a)
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.tr.closeRequested()
	})
}

// updateScale keeps cursor positions in framebuffer pixels, the space the
// panel is laid out in.
func (w *Window) updateScale() {
	fw, fh := w.win.GetFramebufferSize()
	ww, wh := w.win.GetSize()
	w.tr.setScale(fw, fh, ww, wh)
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height uint32) {
	fw, fh := w.win.GetFramebufferSize()
	return clampSize(fw), clampSize(fh)
}

// CreateSurface creates a presentable surface for the window.
func (w *Window) CreateSurface() (render.Surface, error) {
	display, window, err := nativeHandles(w.win)
	if err != nil {
		return nil, err
	}
	raw, err := w.instance.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("platform: create surface: %w", err)
	}
	return &surface{raw: raw}, nil
}

// Adapters lists the adapters that can present to s.
func (w *Window) Adapters(s render.Surface) []hal.ExposedAdapter {
	hs, ok := s.(*surface)
	if !ok {
		return w.instance.EnumerateAdapters(nil)
	}
	return w.instance.EnumerateAdapters(hs.raw)
}

// CapturePointer hides and locks the cursor while on is true so motion
// deltas keep flowing past the window edges. Raw motion is used where the
// platform supports it.
func (w *Window) CapturePointer(on bool) {
	if on == w.captured {
		return
	}
	w.captured = on
	w.tr.capture(on)
	if on {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.win.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
		return
	}
	if glfw.RawMouseMotionSupported() {
		w.win.SetInputMode(glfw.RawMouseMotion, glfw.False)
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// RequestRedraw makes the next Poll end with a RedrawRequested event and
// wakes a blocked Poll.
func (w *Window) RequestRedraw() {
	if !w.redraw {
		w.redraw = true
		glfw.PostEmptyEvent()
	}
}

// Poll processes pending window events. It blocks for a short while when no
// redraw is pending.
func (w *Window) Poll() []event.Event {
	if w.redraw {
		glfw.PollEvents()
	} else {
		glfw.WaitEventsTimeout(idleWait)
	}
	evs := w.tr.drain()
	if w.redraw {
		w.redraw = false
		evs = append(evs, event.RedrawRequested{})
	}
	return evs
}

// Destroy closes the window and releases the instance. Surfaces created by
// the window must be released first.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.instance.Destroy()
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
	w.log.Info("window destroyed")
}
