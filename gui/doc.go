// Package gui implements the settings panel drawn over the fractal.
//
// The panel is immediate mode: every Update consumes the input buffered
// since the previous frame, edits a [scene.GuiData] in place and redraws
// the panel into a CPU pixmap with gg. The result is exposed as an
// [Output]: textured quads in window pixels plus the texture uploads and
// releases the compositor has to perform before and after drawing them.
//
// Basic usage:
//
//	panel, err := gui.New()
//	...
//	panel.HandleEvent(ev) // for every input event
//	panel.Update(&settings, screen)
//	out, err := panel.Output()
package gui
