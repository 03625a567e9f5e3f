package scene

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defaults.
const (
	DefaultOriginDistance = 5
	DefaultMinDistance    = 2
)

// MaxTheta bounds the elevation so the camera never flips over a pole.
const MaxTheta = Radians(math.Pi / 2)

// CameraData is a camera orbiting the world origin at OriginDistance,
// looking at the origin from the direction given by Angles.
//
// OriginDistance >= MinDistance holds after every Zoom.
type CameraData struct {
	OriginDistance float32 `toml:"origin_distance"`
	MinDistance    float32 `toml:"min_distance"`
	Angles         Angles  `toml:"angles"`
}

// DefaultCamera returns the camera used at start-up.
func DefaultCamera() CameraData {
	return CameraData{
		OriginDistance: DefaultOriginDistance,
		MinDistance:    DefaultMinDistance,
	}
}

// Zoom moves the camera delta units towards the origin. Negative deltas
// move it away. The camera never gets closer than MinDistance; there is no
// upper bound.
func (c *CameraData) Zoom(delta float32) {
	c.OriginDistance = math32.Max(c.MinDistance, c.OriginDistance-delta)
}

// Rotate adds the deltas to the camera angles, clamps Theta to [-π/2, π/2]
// and standardizes Phi to [0, 2π).
func (c *CameraData) Rotate(dPhi, dTheta Radians) {
	phi := c.Angles.Phi + dPhi
	theta := c.Angles.Theta + dTheta
	if theta > MaxTheta {
		theta = MaxTheta
	} else if theta < -MaxTheta {
		theta = -MaxTheta
	}
	c.Angles = Angles{Phi: phi.Standardize(), Theta: theta}
}

// Matrix returns the camera rotation Rz(phi) · Ry(-theta).
func (c CameraData) Matrix() mgl32.Mat3 {
	rz := mgl32.Rotate3DZ(float32(c.Angles.Phi))
	ry := mgl32.Rotate3DY(-float32(c.Angles.Theta))
	return rz.Mul3(ry)
}

// Origin returns the camera position in world space.
func (c CameraData) Origin() mgl32.Vec3 {
	return c.Matrix().Mul3x1(mgl32.Vec3{1, 0, 0}).Mul(c.OriginDistance)
}
