package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when text does not name a variant of an
// enumeration.
var ErrUnknownName = errors.New("scene: unknown name")

// FractalGroup selects the family of distance estimators the ray marcher
// evaluates. The numeric value is the id written to the GPU.
type FractalGroup uint32

// Fractal groups.
const (
	KaleidoscopicIFS FractalGroup = iota
	JuliaSet
	GeneralizedJuliaSet

	fractalGroupCount
)

var fractalGroupNames = [fractalGroupCount]string{
	KaleidoscopicIFS:    "Kaleidoscopic IFS",
	JuliaSet:            "Julia Set",
	GeneralizedJuliaSet: "Generalized Julia Set",
}

var fractalGroupKeys = [fractalGroupCount]string{
	KaleidoscopicIFS:    "kifs",
	JuliaSet:            "julia",
	GeneralizedJuliaSet: "generalized-julia",
}

// FractalGroups lists every group in id order.
func FractalGroups() []FractalGroup {
	return []FractalGroup{KaleidoscopicIFS, JuliaSet, GeneralizedJuliaSet}
}

// FractalGroupFromID decodes a GPU id. Unknown ids decode to
// KaleidoscopicIFS.
func FractalGroupFromID(id uint32) FractalGroup {
	if id >= uint32(fractalGroupCount) {
		return KaleidoscopicIFS
	}
	return FractalGroup(id)
}

// ID returns the stable numeric id.
func (g FractalGroup) ID() uint32 { return uint32(g) }

// Valid reports whether g is a declared group.
func (g FractalGroup) Valid() bool { return g < fractalGroupCount }

func (g FractalGroup) String() string {
	if !g.Valid() {
		return fmt.Sprintf("FractalGroup(%d)", uint32(g))
	}
	return fractalGroupNames[g]
}

// MarshalText implements encoding.TextMarshaler.
func (g FractalGroup) MarshalText() ([]byte, error) {
	return []byte(fractalGroupKeys[FractalGroupFromID(uint32(g))]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *FractalGroup) UnmarshalText(text []byte) error {
	for i, key := range fractalGroupKeys {
		if key == string(text) {
			*g = FractalGroup(i)
			return nil
		}
	}
	return fmt.Errorf("%w: fractal group %q", ErrUnknownName, text)
}

// PrimitiveShape selects the base shape folded by the kaleidoscopic IFS.
// The numeric value is the id written to the GPU.
type PrimitiveShape uint32

// Primitive shapes.
const (
	Sphere PrimitiveShape = iota
	Cylinder
	Box
	Torus
	SierpinskiTetrahedron
	Bunny

	primitiveShapeCount
)

var primitiveShapeNames = [primitiveShapeCount]string{
	Sphere:                "Sphere",
	Cylinder:              "Cylinder",
	Box:                   "Box",
	Torus:                 "Torus",
	SierpinskiTetrahedron: "Sierpinski Tetrahedron",
	Bunny:                 "Bunny",
}

var primitiveShapeKeys = [primitiveShapeCount]string{
	Sphere:                "sphere",
	Cylinder:              "cylinder",
	Box:                   "box",
	Torus:                 "torus",
	SierpinskiTetrahedron: "sierpinski-tetrahedron",
	Bunny:                 "bunny",
}

// PrimitiveShapes lists every shape in id order.
func PrimitiveShapes() []PrimitiveShape {
	return []PrimitiveShape{Sphere, Cylinder, Box, Torus, SierpinskiTetrahedron, Bunny}
}

// PrimitiveShapeFromID decodes a GPU id. Unknown ids decode to Sphere.
func PrimitiveShapeFromID(id uint32) PrimitiveShape {
	if id >= uint32(primitiveShapeCount) {
		return Sphere
	}
	return PrimitiveShape(id)
}

// ID returns the stable numeric id.
func (s PrimitiveShape) ID() uint32 { return uint32(s) }

// Valid reports whether s is a declared shape.
func (s PrimitiveShape) Valid() bool { return s < primitiveShapeCount }

func (s PrimitiveShape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("PrimitiveShape(%d)", uint32(s))
	}
	return primitiveShapeNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s PrimitiveShape) MarshalText() ([]byte, error) {
	return []byte(primitiveShapeKeys[PrimitiveShapeFromID(uint32(s))]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PrimitiveShape) UnmarshalText(text []byte) error {
	for i, key := range primitiveShapeKeys {
		if key == string(text) {
			*s = PrimitiveShape(i)
			return nil
		}
	}
	return fmt.Errorf("%w: primitive shape %q", ErrUnknownName, text)
}
