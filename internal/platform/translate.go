// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/raymarch/event"
)

// translator turns GLFW callback arguments into events. It keeps the last
// cursor position to derive motion deltas.
//
// While captured the cursor is disabled and GLFW reports unbounded virtual
// positions. Only deltas are emitted then, so the panel keeps the position
// it last saw.
type translator struct {
	pending []event.Event

	lastX, lastY float64
	hasLast      bool
	captured     bool

	// scaleX and scaleY convert window coordinates to framebuffer pixels.
	// Zero means 1.
	scaleX, scaleY float64
}

func (t *translator) push(e event.Event) {
	t.pending = append(t.pending, e)
}

// drain returns and clears the pending events.
func (t *translator) drain() []event.Event {
	evs := t.pending
	t.pending = nil
	return evs
}

func (t *translator) framebufferSize(width, height int) {
	t.push(event.Resized{Width: clampSize(width), Height: clampSize(height)})
}

// setScale records the framebuffer to window size ratio.
func (t *translator) setScale(fbWidth, fbHeight, winWidth, winHeight int) {
	if winWidth <= 0 || winHeight <= 0 || fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	t.scaleX = float64(fbWidth) / float64(winWidth)
	t.scaleY = float64(fbHeight) / float64(winHeight)
}

func (t *translator) cursorPos(x, y float64) {
	if t.scaleX != 0 {
		x, y = x*t.scaleX, y*t.scaleY
	}
	if !t.captured {
		t.push(event.PointerMoved{X: x, Y: y})
	}
	if t.hasLast && (x != t.lastX || y != t.lastY) {
		t.push(event.MotionDelta{DX: x - t.lastX, DY: y - t.lastY})
	}
	t.lastX, t.lastY, t.hasLast = x, y, true
}

func (t *translator) cursorLeft() {
	if !t.captured {
		t.hasLast = false
	}
}

// capture switches between window-relative and captured motion. Releasing
// drops the baseline because GLFW moves the cursor back to where the
// capture started.
func (t *translator) capture(on bool) {
	if t.captured && !on {
		t.hasLast = false
	}
	t.captured = on
}

func (t *translator) mouseButton(button glfw.MouseButton, action glfw.Action) {
	var b event.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = event.ButtonPrimary
	case glfw.MouseButtonRight:
		b = event.ButtonSecondary
	case glfw.MouseButtonMiddle:
		b = event.ButtonMiddle
	default:
		return
	}
	if action == glfw.Repeat {
		return
	}
	t.push(event.PointerButton{Button: b, Pressed: action == glfw.Press})
}

func (t *translator) scroll(yoff float64) {
	if yoff != 0 {
		t.push(event.Scrolled{Delta: yoff, Unit: event.ScrollLines})
	}
}

func (t *translator) key(k glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	if key, ok := mapKey(k); ok {
		t.push(event.KeyPressed{Key: key})
	}
}

func (t *translator) closeRequested() {
	t.push(event.CloseRequested{})
}

// mapKey maps the keys the application reacts to. Other keys are dropped.
func mapKey(k glfw.Key) (gpucontext.Key, bool) {
	switch k {
	case glfw.KeyEscape:
		return gpucontext.KeyEscape, true
	case glfw.KeySpace:
		return gpucontext.KeySpace, true
	default:
		return 0, false
	}
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v) //nolint:gosec // framebuffer sizes fit in uint32
}
