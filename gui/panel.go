package gui

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/scene"
)

// ErrPanelUnconfigured is returned by Output before the first Update.
var ErrPanelUnconfigured = errors.New("gui: panel drawn before its first update")

// Panel geometry in window pixels.
const (
	PanelWidth = 300
	Margin     = 10

	minPanelHeight = 64
	maxPanelHeight = 1024

	padding   = 8
	rowHeight = 22
	spacing   = 4
	fontSize  = 14
)

// Panel is the settings panel. It is not safe for concurrent use.
type Panel struct {
	face text.Face
	log  *slog.Logger
	in   input

	// Widget interaction state.
	active     string
	expanded   string
	dragStartX float64
	dragStart  float64
	widgets    map[string]rect

	// Window-space area covered last frame.
	area rect

	pixmap   *gg.Pixmap
	dc       *gg.Context
	texture  TextureID
	nextID   TextureID
	uploaded []byte
	free     []TextureID

	out        Output
	configured bool
}

// New creates a panel using the Go Regular font.
func New() (*Panel, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	return &Panel{
		face:    source.Face(fontSize),
		log:     raymarch.ComponentLogger("gui"),
		widgets: make(map[string]rect),
	}, nil
}

// HandleEvent buffers pointer input for the next Update. Other events are
// ignored.
func (p *Panel) HandleEvent(e event.Event) {
	p.in.handle(e)
}

// WantsPointerInput reports whether the pointer is over the panel or a
// panel widget is being dragged.
func (p *Panel) WantsPointerInput() bool {
	if p.active != "" {
		return true
	}
	return p.in.hasPos && p.area.contains(p.in.x, p.in.y)
}

// Update applies the buffered input to data and redraws the panel for a
// window of the given size.
func (p *Panel) Update(data *scene.GuiData, screen scene.ScreenData) {
	height := panelHeight(screen.Height)
	if p.pixmap == nil || p.pixmap.Height() != height {
		p.allocate(height)
	}

	clear(p.widgets)
	pal := paletteFor(data.Theme)
	p.dc.ClearWithColor(pal.background)
	p.dc.SetFont(p.face)

	u := &ui{
		p:   p,
		dc:  p.dc,
		pal: pal,
		w:   PanelWidth - 2*padding,
		y:   padding,
	}
	u.build(data)

	used := min(u.y+padding-spacing, float64(height))
	p.area = rect{x: Margin, y: Margin, w: PanelWidth, h: used}
	if p.in.released {
		p.active = ""
	}
	p.in.endFrame()

	p.out = Output{
		Primitives: []Primitive{
			quad(p.texture, Margin, Margin, PanelWidth, float32(used), 1, float32(used/float64(height))),
		},
	}
	if pixels := p.pixmap.Data(); !bytes.Equal(pixels, p.uploaded) {
		p.uploaded = append(p.uploaded[:0], pixels...)
		img := Image{Width: PanelWidth, Height: height, Pixels: bytes.Clone(pixels)}
		p.out.Textures.Set = []TextureSet{{ID: p.texture, Image: img}}
	}
	p.out.Textures.Free, p.free = p.free, nil
	p.configured = true
}

// Output returns the primitives of the last Update. Texture deltas are
// returned once; later calls for the same frame carry none.
func (p *Panel) Output() (Output, error) {
	if !p.configured {
		return Output{}, ErrPanelUnconfigured
	}
	out := p.out
	p.out.Textures = TexturesDelta{}
	return out, nil
}

// allocate replaces the panel pixmap and texture. The old texture is freed
// with the next output.
func (p *Panel) allocate(height int) {
	if p.dc != nil {
		_ = p.dc.Close()
	}
	if p.texture != 0 {
		p.free = append(p.free, p.texture)
	}
	p.nextID++
	p.texture = p.nextID
	p.pixmap = gg.NewPixmap(PanelWidth, height)
	p.dc = gg.NewContext(PanelWidth, height, gg.WithPixmap(p.pixmap))
	p.uploaded = p.uploaded[:0]
	p.log.Debug("panel texture allocated", "id", p.texture, "height", height)
}

func panelHeight(screenHeight uint32) int {
	h := int(screenHeight) - 2*Margin
	return max(minPanelHeight, min(h, maxPanelHeight))
}
