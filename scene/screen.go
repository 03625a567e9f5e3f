package scene

// ScreenData is the size of the presentation surface in physical pixels.
type ScreenData struct {
	Width  uint32
	Height uint32
}

// AspectRatio returns Width/Height, or 0 for a zero height.
func (s ScreenData) AspectRatio() float32 {
	if s.Height == 0 {
		return 0
	}
	return float32(s.Width) / float32(s.Height)
}

// Empty reports whether either dimension is zero. Minimized windows report
// an empty size.
func (s ScreenData) Empty() bool {
	return s.Width == 0 || s.Height == 0
}
