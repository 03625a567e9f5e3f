package scene

import "fmt"

// Theme is the color scheme of the settings panel.
type Theme uint8

// Panel themes.
const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return fmt.Sprintf("Theme(%d)", uint8(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	if t == ThemeLight {
		return []byte("light"), nil
	}
	return []byte("dark"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dark":
		*t = ThemeDark
	case "light":
		*t = ThemeLight
	default:
		return fmt.Errorf("%w: theme %q", ErrUnknownName, text)
	}
	return nil
}

// Range is the editable interval of a numeric setting together with the
// amount one pixel of dragging changes it.
type Range struct {
	Min, Max float32
	Speed    float32
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Editable ranges of the numeric settings.
var (
	MaxIterationsRange = Range{Min: 1, Max: 1000, Speed: 1}
	MaxDistanceRange   = Range{Min: 10, Max: 10000, Speed: 1}
	EpsilonRange       = Range{Min: 1e-6, Max: 1, Speed: 1e-6}
	PowerRange         = Range{Min: 1, Max: 10, Speed: 0.01}
	ConstantRange      = Range{Min: -1, Max: 1, Speed: 0.01}
)

// GuiData is everything the settings panel lets the user edit. Colors are
// kept as sRGB bytes, the way color pickers present them.
type GuiData struct {
	MaxIterations   uint32         `toml:"max_iterations"`
	MaxDistance     float32        `toml:"max_distance"`
	Epsilon         float32        `toml:"epsilon"`
	Heatmap         bool           `toml:"heatmap"`
	FractalColor    RGB8           `toml:"fractal_color"`
	BackgroundColor RGB8           `toml:"background_color"`
	FractalGroup    FractalGroup   `toml:"fractal_group"`
	PrimitiveShape  PrimitiveShape `toml:"primitive_shape"`
	Power           float32        `toml:"power"`
	Constant        [4]float32     `toml:"constant"`

	Theme Theme `toml:"theme"`
	Open  bool  `toml:"open"`
}

// DefaultGui returns the settings shown at start-up.
func DefaultGui() GuiData {
	return GuiData{
		MaxIterations:   200,
		MaxDistance:     100,
		Epsilon:         0.001,
		FractalColor:    RGB8{200, 200, 200},
		BackgroundColor: RGB8{0, 0, 0},
		FractalGroup:    KaleidoscopicIFS,
		PrimitiveShape:  Sphere,
		Power:           8,
		Constant:        [4]float32{-0.2, 0.6, 0.2, 0.2},
		Theme:           ThemeDark,
	}
}

// Clamped returns g with every numeric field limited to its editable range
// and every enum decoded safely.
func (g GuiData) Clamped() GuiData {
	g.MaxIterations = uint32(MaxIterationsRange.Clamp(float32(g.MaxIterations)))
	g.MaxDistance = MaxDistanceRange.Clamp(g.MaxDistance)
	g.Epsilon = EpsilonRange.Clamp(g.Epsilon)
	g.Power = PowerRange.Clamp(g.Power)
	for i, c := range g.Constant {
		g.Constant[i] = ConstantRange.Clamp(c)
	}
	g.FractalGroup = FractalGroupFromID(g.FractalGroup.ID())
	g.PrimitiveShape = PrimitiveShapeFromID(g.PrimitiveShape.ID())
	if g.Theme != ThemeLight {
		g.Theme = ThemeDark
	}
	return g
}

// JuliaFunction describes the quaternion map iterated by the Julia groups,
// e.g. "f(q) = q^2 + (-0.2, 0.6, 0.2, 0.2)". The plain Julia set always
// squares.
func (g GuiData) JuliaFunction() string {
	power := "2"
	if g.FractalGroup == GeneralizedJuliaSet {
		power = fmt.Sprintf("%g", g.Power)
	}
	c := g.Constant
	return fmt.Sprintf("f(q) = q^%s + (%g, %g, %g, %g)", power, c[0], c[1], c[2], c[3])
}
