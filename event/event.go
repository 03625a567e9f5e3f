// Package event defines the window and device input delivered to the
// render state. Platform code translates native callbacks into these
// values; everything above it is platform independent.
package event

import "github.com/gogpu/gpucontext"

// Event is implemented by every input value in this package.
type Event interface {
	isEvent()
}

// Resized reports a new framebuffer size in physical pixels.
type Resized struct {
	Width, Height uint32
}

// Button identifies a pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerButton reports a press or release.
type PointerButton struct {
	Button  Button
	Pressed bool
}

// PointerMoved reports the cursor position in framebuffer pixels, the
// same space as Resized.
type PointerMoved struct {
	X, Y float64
}

// ScrollUnit tells how a scroll delta was measured.
type ScrollUnit uint8

// Scroll units.
const (
	// ScrollLines is a wheel notch.
	ScrollLines ScrollUnit = iota
	// ScrollPixels comes from precise touchpads.
	ScrollPixels
)

// PixelsPerLine converts pixel scroll deltas to lines.
const PixelsPerLine = 40

// Scrolled reports a vertical scroll. Positive deltas scroll up, away from
// the user.
type Scrolled struct {
	Delta float64
	Unit  ScrollUnit
}

// Lines returns the delta measured in wheel notches.
func (s Scrolled) Lines() float64 {
	if s.Unit == ScrollPixels {
		return s.Delta / PixelsPerLine
	}
	return s.Delta
}

// MotionDelta is raw pointer motion, independent of the cursor position
// and of window edges.
type MotionDelta struct {
	DX, DY float64
}

// KeyPressed reports a key going down.
type KeyPressed struct {
	Key gpucontext.Key
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// RedrawRequested asks for the next frame.
type RedrawRequested struct{}

func (Resized) isEvent()         {}
func (PointerButton) isEvent()   {}
func (PointerMoved) isEvent()    {}
func (Scrolled) isEvent()        {}
func (MotionDelta) isEvent()     {}
func (KeyPressed) isEvent()      {}
func (CloseRequested) isEvent()  {}
func (RedrawRequested) isEvent() {}

// IsExitKey reports whether k quits the application.
func IsExitKey(k gpucontext.Key) bool {
	return k == gpucontext.KeyEscape
}
