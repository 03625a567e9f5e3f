package scene

// OptionsData is the render configuration read by the ray-marching
// programs. Colors are linear RGB.
type OptionsData struct {
	MaxIterations   uint32
	MaxDistance     float32
	Epsilon         float32
	FractalColor    RGB
	BackgroundColor RGB
	FractalGroup    FractalGroup
	PrimitiveShape  PrimitiveShape
	Power           float32
	Constant        [4]float32
	Heatmap         bool
}

// OptionsFromGui converts the panel settings into render options. Colors go
// through the exact sRGB transfer function; everything else is copied.
func OptionsFromGui(g GuiData) OptionsData {
	return OptionsData{
		MaxIterations:   g.MaxIterations,
		MaxDistance:     g.MaxDistance,
		Epsilon:         g.Epsilon,
		FractalColor:    g.FractalColor.Linear(),
		BackgroundColor: g.BackgroundColor.Linear(),
		FractalGroup:    g.FractalGroup,
		PrimitiveShape:  g.PrimitiveShape,
		Power:           g.Power,
		Constant:        g.Constant,
		Heatmap:         g.Heatmap,
	}
}
