package scene

import "github.com/chewxy/math32"

// srgbToLinearLUT maps every sRGB byte to its linear value.
var srgbToLinearLUT [256]float32

func init() {
	for i := range srgbToLinearLUT {
		srgbToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
}

// SRGBToLinear applies the sRGB electro-optical transfer function to a
// component in [0,1]:
//
//	s <= 0.04045: s / 12.92
//	otherwise:    ((s + 0.055) / 1.055) ^ 2.4
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1/2.4) - 0.055
}

// RGB8 is an sRGB-encoded color with one byte per channel.
type RGB8 [3]uint8

// Linear converts c to linear RGB.
func (c RGB8) Linear() RGB {
	return RGB{srgbToLinearLUT[c[0]], srgbToLinearLUT[c[1]], srgbToLinearLUT[c[2]]}
}

// RGB is a linear-space color with components nominally in [0,1].
type RGB [3]float32

// Clamp limits every component to [0,1]. NaN becomes 0.
func (c RGB) Clamp() RGB {
	for i, v := range c {
		switch {
		case v >= 1:
			c[i] = 1
		case v > 0:
		default:
			c[i] = 0
		}
	}
	return c
}

// SRGB8 converts c to sRGB bytes, clamping out-of-range components.
func (c RGB) SRGB8() RGB8 {
	c = c.Clamp()
	var out RGB8
	for i, v := range c {
		out[i] = uint8(LinearToSRGB(v)*255 + 0.5)
	}
	return out
}
