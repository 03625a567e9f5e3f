package scene

import (
	"math"

	"github.com/chewxy/math32"
)

// TwoPi is one full turn.
const TwoPi = 2 * math.Pi

// AngleEpsilon is the tolerance used by [Radians.Equal].
const AngleEpsilon = 1e-4

// Radians is an angle in radians.
type Radians float32

// FromDegrees converts degrees to radians.
func FromDegrees(degrees float32) Radians {
	return Radians(degrees * math.Pi / 180)
}

// Degrees converts r to degrees.
func (r Radians) Degrees() float32 {
	return float32(r) * 180 / math.Pi
}

// Standardize maps r into [0, 2π).
func (r Radians) Standardize() Radians {
	s := math32.Mod(float32(r), TwoPi)
	if s < 0 {
		s += TwoPi
	}
	// -ε + 2π rounds to 2π in float32.
	if s >= TwoPi {
		s = 0
	}
	return Radians(s)
}

// Equal reports whether r and o describe the same direction, i.e. whether
// they differ by a whole number of turns within AngleEpsilon.
func (r Radians) Equal(o Radians) bool {
	diff := math32.Mod(math32.Abs(float32(r-o)), TwoPi)
	return diff < AngleEpsilon || diff > TwoPi-AngleEpsilon
}

// Angles is a spherical direction: Phi is the azimuth around the z axis and
// Theta the elevation above the xy plane.
type Angles struct {
	Phi   Radians `toml:"phi"`
	Theta Radians `toml:"theta"`
}

// Equal compares both components with [Radians.Equal].
func (a Angles) Equal(o Angles) bool {
	return a.Phi.Equal(o.Phi) && a.Theta.Equal(o.Theta)
}
