package gui

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/raymarch/scene"
)

type palette struct {
	background gg.RGBA
	header     gg.RGBA
	widget     gg.RGBA
	hovered    gg.RGBA
	active     gg.RGBA
	text       gg.RGBA
	weak       gg.RGBA
	accent     gg.RGBA
}

var darkPalette = palette{
	background: gg.RGBA{R: 0.106, G: 0.106, B: 0.106, A: 0.94},
	header:     gg.RGB(0.2, 0.2, 0.2),
	widget:     gg.RGB(0.235, 0.235, 0.235),
	hovered:    gg.RGB(0.275, 0.275, 0.275),
	active:     gg.RGB(0.216, 0.216, 0.216),
	text:       gg.RGB(0.86, 0.86, 0.86),
	weak:       gg.RGB(0.55, 0.55, 0.55),
	accent:     gg.Hex("#5a9fd6"),
}

var lightPalette = palette{
	background: gg.RGBA{R: 0.973, G: 0.973, B: 0.973, A: 0.94},
	header:     gg.RGB(0.86, 0.86, 0.86),
	widget:     gg.RGB(0.9, 0.9, 0.9),
	hovered:    gg.RGB(0.82, 0.82, 0.82),
	active:     gg.RGB(0.75, 0.75, 0.75),
	text:       gg.RGB(0.1, 0.1, 0.1),
	weak:       gg.RGB(0.4, 0.4, 0.4),
	accent:     gg.Hex("#2a6cb4"),
}

func paletteFor(t scene.Theme) palette {
	if t == scene.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
