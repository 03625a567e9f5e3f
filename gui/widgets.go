package gui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/raymarch/scene"
)

const (
	heatmapTip     = "Display color via heatmap - brighter spots have higher iteration count"
	hoverTip       = "Hover over a setting to see what it does. Drag the fractal to rotate it and scroll to zoom."
	kifsText       = "Kaleidoscopic iterated function system. Currently can only display preset shapes."
	juliaText      = "Quaternion Julia set, the points q whose orbit under f stays bounded."
	generalizedTxt = "Julia set of a quaternion raised to an arbitrary power."
	labelFraction  = 0.45
)

var byteRange = scene.Range{Min: 0, Max: 255, Speed: 1}

// ui lays out and draws one panel frame. Coordinates are panel-local.
type ui struct {
	p   *Panel
	dc  *gg.Context
	pal palette

	w, y    float64
	tooltip string
}

func (u *ui) build(d *scene.GuiData) {
	u.header("menu", "Settings Menu", &d.Open)
	if !d.Open {
		return
	}

	u.themeRow(&d.Theme)

	u.section("General")
	u.dragUint("max_iterations", "Max iterations", &d.MaxIterations, scene.MaxIterationsRange)
	u.dragFloat("max_distance", "Max distance", &d.MaxDistance, scene.MaxDistanceRange)
	u.dragFloat("epsilon", "Epsilon", &d.Epsilon, scene.EpsilonRange)
	u.checkbox("heatmap", "Heatmap", &d.Heatmap, heatmapTip)
	u.color("fractal_color", "Fractal color", &d.FractalColor)
	u.color("background_color", "Background color", &d.BackgroundColor)

	u.section("Fractal")
	groups := scene.FractalGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	if i, ok := u.dropdown("fractal_group", "Group", d.FractalGroup.String(), names); ok {
		d.FractalGroup = groups[i]
	}

	switch d.FractalGroup {
	case scene.JuliaSet, scene.GeneralizedJuliaSet:
		if d.FractalGroup == scene.JuliaSet {
			u.wrapped(juliaText, u.pal.weak)
		} else {
			u.wrapped(generalizedTxt, u.pal.weak)
		}
		u.wrapped(d.JuliaFunction(), u.pal.text)
		for i := range d.Constant {
			u.dragFloat(fmt.Sprintf("constant/%d", i), fmt.Sprintf("c%d", i), &d.Constant[i], scene.ConstantRange)
		}
		if d.FractalGroup == scene.GeneralizedJuliaSet {
			u.dragFloat("power", "Power", &d.Power, scene.PowerRange)
		}
	default:
		u.wrapped(kifsText, u.pal.weak)
		shapes := scene.PrimitiveShapes()
		names := make([]string, len(shapes))
		for i, s := range shapes {
			names[i] = s.String()
		}
		if i, ok := u.dropdown("primitive_shape", "Shape", d.PrimitiveShape.String(), names); ok {
			d.PrimitiveShape = shapes[i]
		}
	}

	u.separator()
	tip := u.tooltip
	if tip == "" {
		tip = hoverTip
	}
	u.wrapped(tip, u.pal.weak)
}

// row allocates the next full-width row.
func (u *ui) row() rect {
	r := rect{x: padding, y: u.y, w: u.w, h: rowHeight}
	u.y += rowHeight + spacing
	return r
}

// interact registers r under id and returns whether the pointer hovers it
// and whether it was clicked this frame.
func (u *ui) interact(id string, r rect) (hovered, clicked bool) {
	p := u.p
	p.widgets[id] = r
	x, y := p.in.x-Margin, p.in.y-Margin
	hovered = p.in.hasPos && r.contains(x, y) && (p.active == "" || p.active == id)
	if hovered && p.in.pressed {
		p.active = id
		p.dragStartX = x
	}
	clicked = hovered && p.in.released && p.active == id
	return hovered, clicked
}

// dragging reports whether id is being dragged and the horizontal pointer
// travel since the press.
func (u *ui) dragging(id string) (float64, bool) {
	p := u.p
	if p.active != id || !p.in.down {
		return 0, false
	}
	return p.in.x - Margin - p.dragStartX, true
}

func (u *ui) fill(r rect, c gg.RGBA, radius float64) {
	u.dc.SetColor(c.Color())
	u.dc.DrawRoundedRectangle(r.x, r.y, r.w, r.h, radius)
	_ = u.dc.Fill()
}

func (u *ui) text(s string, x, y float64, c gg.RGBA) {
	u.dc.SetColor(c.Color())
	u.dc.DrawStringAnchored(s, x, y, 0, 0.5)
}

func (u *ui) centered(s string, r rect, c gg.RGBA) {
	u.dc.SetColor(c.Color())
	u.dc.DrawStringAnchored(s, r.x+r.w/2, r.y+r.h/2, 0.5, 0.5)
}

// triangle draws a disclosure arrow pointing right or down.
func (u *ui) triangle(cx, cy float64, down bool, c gg.RGBA) {
	const s = 4.0
	u.dc.SetColor(c.Color())
	if down {
		u.dc.MoveTo(cx-s, cy-s/2)
		u.dc.LineTo(cx+s, cy-s/2)
		u.dc.LineTo(cx, cy+s)
	} else {
		u.dc.MoveTo(cx-s/2, cy-s)
		u.dc.LineTo(cx+s, cy)
		u.dc.LineTo(cx-s/2, cy+s)
	}
	u.dc.ClosePath()
	_ = u.dc.Fill()
}

func (u *ui) header(id, label string, open *bool) {
	r := u.row()
	hovered, clicked := u.interact(id, r)
	if clicked {
		*open = !*open
	}
	bg := u.pal.header
	if hovered {
		bg = u.pal.hovered
	}
	u.fill(r, bg, 3)
	u.triangle(r.x+10, r.y+r.h/2, *open, u.pal.text)
	u.text(label, r.x+22, r.y+r.h/2, u.pal.text)
}

func (u *ui) section(label string) {
	u.y += spacing
	r := u.row()
	u.text(label, r.x, r.y+r.h/2, u.pal.accent)
	u.dc.SetColor(u.pal.accent.Color())
	u.dc.SetLineWidth(1)
	u.dc.MoveTo(r.x, r.y+r.h-0.5)
	u.dc.LineTo(r.x+r.w, r.y+r.h-0.5)
	_ = u.dc.Stroke()
}

func (u *ui) separator() {
	y := u.y + spacing/2
	u.dc.SetColor(u.pal.weak.Color())
	u.dc.SetLineWidth(1)
	u.dc.MoveTo(padding, y)
	u.dc.LineTo(padding+u.w, y)
	_ = u.dc.Stroke()
	u.y += 2 * spacing
}

// wrapped draws s broken into lines that fit the panel width.
func (u *ui) wrapped(s string, c gg.RGBA) {
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if w, _ := u.dc.MeasureString(candidate); w > u.w && line != "" {
			r := u.row()
			u.text(line, r.x, r.y+r.h/2, c)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		r := u.row()
		u.text(line, r.x, r.y+r.h/2, c)
	}
}

// field splits a row into a label and a value area.
func (u *ui) field(label string) rect {
	r := u.row()
	u.text(label, r.x, r.y+r.h/2, u.pal.text)
	lw := math.Round(r.w * labelFraction)
	return rect{x: r.x + lw, y: r.y, w: r.w - lw, h: r.h}
}

func (u *ui) box(id string, r rect, value string) {
	hovered, _ := u.interact(id, r)
	bg := u.pal.widget
	switch {
	case u.p.active == id:
		bg = u.pal.active
	case hovered:
		bg = u.pal.hovered
	}
	u.fill(r, bg, 2)
	u.centered(value, r, u.pal.text)
}

// drag applies pointer travel to a value captured at press time.
func (u *ui) drag(id string, v float64, rg scene.Range) (float64, bool) {
	if u.p.active == id && u.p.in.pressed {
		u.p.dragStart = v
	}
	dx, ok := u.dragging(id)
	if !ok {
		return v, false
	}
	return float64(rg.Clamp(float32(u.p.dragStart + dx*float64(rg.Speed)))), true
}

func (u *ui) dragFloat(id, label string, v *float32, rg scene.Range) {
	r := u.field(label)
	u.box(id, r, fmt.Sprintf("%.4g", *v))
	if nv, ok := u.drag(id, float64(*v), rg); ok {
		*v = float32(nv)
	}
}

func (u *ui) dragUint(id, label string, v *uint32, rg scene.Range) {
	r := u.field(label)
	u.box(id, r, fmt.Sprintf("%d", *v))
	if nv, ok := u.drag(id, float64(*v), rg); ok {
		*v = uint32(math.Round(nv))
	}
}

func (u *ui) checkbox(id, label string, v *bool, tip string) {
	r := u.row()
	hovered, clicked := u.interact(id, r)
	if clicked {
		*v = !*v
	}
	if hovered && tip != "" {
		u.tooltip = tip
	}
	b := rect{x: r.x, y: r.y + 3, w: r.h - 6, h: r.h - 6}
	bg := u.pal.widget
	if hovered {
		bg = u.pal.hovered
	}
	u.fill(b, bg, 2)
	if *v {
		u.fill(rect{x: b.x + 4, y: b.y + 4, w: b.w - 8, h: b.h - 8}, u.pal.accent, 1)
	}
	u.text(label, b.x+b.w+6, r.y+r.h/2, u.pal.text)
}

func (u *ui) themeRow(t *scene.Theme) {
	r := u.field("Theme")
	half := r.w / 2
	for i, th := range []scene.Theme{scene.ThemeDark, scene.ThemeLight} {
		cell := rect{x: r.x + float64(i)*half, y: r.y, w: half, h: r.h}
		id := "theme/" + th.String()
		hovered, clicked := u.interact(id, cell)
		if clicked {
			*t = th
		}
		c := u.pal.weak
		if hovered {
			c = u.pal.text
		}
		cx, cy := cell.x+8, cell.y+cell.h/2
		u.dc.SetColor(c.Color())
		u.dc.SetLineWidth(1)
		u.dc.DrawCircle(cx, cy, 5)
		_ = u.dc.Stroke()
		if *t == th {
			u.dc.SetColor(u.pal.accent.Color())
			u.dc.DrawCircle(cx, cy, 3)
			_ = u.dc.Fill()
		}
		u.text(th.String(), cx+10, cy, u.pal.text)
	}
}

func (u *ui) color(id, label string, c *scene.RGB8) {
	r := u.field(label)
	const swatch = rowHeight
	cellW := (r.w - swatch - 3*spacing) / 3
	for i := range c {
		cell := rect{x: r.x + float64(i)*(cellW+spacing), y: r.y, w: cellW, h: r.h}
		cid := fmt.Sprintf("%s/%d", id, i)
		u.box(cid, cell, fmt.Sprintf("%c %d", "RGB"[i], c[i]))
		if nv, ok := u.drag(cid, float64(c[i]), byteRange); ok {
			c[i] = uint8(math.Round(nv))
		}
	}
	sw := rect{x: r.x + r.w - swatch, y: r.y, w: swatch, h: r.h}
	u.fill(sw, gg.RGB(float64(c[0])/255, float64(c[1])/255, float64(c[2])/255), 2)
}

// dropdown draws a combo box. While open, the options are listed below it;
// picking one closes it and returns the option index.
func (u *ui) dropdown(id, label, current string, options []string) (int, bool) {
	r := u.field(label)
	_, clicked := u.interact(id, r)
	open := u.p.expanded == id
	if clicked {
		if open {
			u.p.expanded = ""
		} else {
			u.p.expanded = id
		}
		open = !open
	}
	bg := u.pal.widget
	if open {
		bg = u.pal.active
	}
	u.fill(r, bg, 2)
	u.text(current, r.x+6, r.y+r.h/2, u.pal.text)
	u.triangle(r.x+r.w-10, r.y+r.h/2, open, u.pal.text)
	if !open {
		return 0, false
	}

	picked, ok := -1, false
	for i, name := range options {
		o := u.row()
		o = rect{x: r.x, y: o.y, w: r.w, h: o.h}
		hovered, clicked := u.interact(fmt.Sprintf("%s/%d", id, i), o)
		if clicked {
			picked, ok = i, true
		}
		c := u.pal.widget
		if hovered || name == current {
			c = u.pal.hovered
		}
		u.fill(o, c, 2)
		u.text(name, o.x+6, o.y+o.h/2, u.pal.text)
	}
	if ok {
		u.p.expanded = ""
	}
	return picked, ok
}
