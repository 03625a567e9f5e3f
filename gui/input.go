package gui

import "github.com/gogpu/raymarch/event"

// input buffers the pointer state between two updates.
type input struct {
	x, y   float64
	hasPos bool

	down     bool
	pressed  bool
	released bool
}

func (in *input) handle(e event.Event) {
	switch e := e.(type) {
	case event.PointerMoved:
		in.x, in.y = e.X, e.Y
		in.hasPos = true
	case event.PointerButton:
		if e.Button != event.ButtonPrimary {
			return
		}
		if e.Pressed {
			in.pressed = true
		} else {
			in.released = true
		}
		in.down = e.Pressed
	}
}

// endFrame clears the edge-triggered state.
func (in *input) endFrame() {
	in.pressed = false
	in.released = false
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
