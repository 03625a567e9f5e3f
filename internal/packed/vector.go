// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package packed

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/raymarch/scene"
)

// Vec2 is a vec2<f32>: 8 bytes, 8-byte aligned.
type Vec2 [2]float32

// Vec4 is a vec4<f32>: 16 bytes, 16-byte aligned. A vec3<f32> is stored in
// a Vec4 whose last component is zero.
type Vec4 [4]float32

// Mat3 is a mat3x3<f32>: three columns, each in a 16-byte slot.
type Mat3 [3]Vec4

// PackVec2 packs a two-component vector.
func PackVec2(v mgl32.Vec2) Vec2 { return Vec2{v[0], v[1]} }

// UnpackVec2 unpacks a two-component vector.
func UnpackVec2(p Vec2) mgl32.Vec2 { return mgl32.Vec2{p[0], p[1]} }

// PackVec3 packs a three-component vector into a zero-padded slot.
func PackVec3(v mgl32.Vec3) Vec4 { return Vec4{v[0], v[1], v[2], 0} }

// UnpackVec3 drops the padding component.
func UnpackVec3(p Vec4) mgl32.Vec3 { return mgl32.Vec3{p[0], p[1], p[2]} }

// PackVec4 packs a four-component vector.
func PackVec4(v mgl32.Vec4) Vec4 { return Vec4(v) }

// UnpackVec4 unpacks a four-component vector.
func UnpackVec4(p Vec4) mgl32.Vec4 { return mgl32.Vec4(p) }

// PackMat3 packs a column-major 3x3 matrix column by column.
func PackMat3(m mgl32.Mat3) Mat3 {
	return Mat3{PackVec3(m.Col(0)), PackVec3(m.Col(1)), PackVec3(m.Col(2))}
}

// UnpackMat3 is the inverse of PackMat3.
func UnpackMat3(p Mat3) mgl32.Mat3 {
	return mgl32.Mat3FromCols(UnpackVec3(p[0]), UnpackVec3(p[1]), UnpackVec3(p[2]))
}

// PackAngles packs (phi, theta) without normalizing them.
func PackAngles(a scene.Angles) Vec2 { return Vec2{float32(a.Phi), float32(a.Theta)} }

// UnpackAngles is the inverse of PackAngles. Compare results with
// [scene.Angles.Equal]; directions are only meaningful modulo a turn.
func UnpackAngles(p Vec2) scene.Angles {
	return scene.Angles{Phi: scene.Radians(p[0]), Theta: scene.Radians(p[1])}
}

// PackColor packs a linear color into a zero-padded vec3 slot.
func PackColor(c scene.RGB) Vec4 { return Vec4{c[0], c[1], c[2], 0} }

// UnpackColor unpacks a color, clamping every channel to [0,1].
func UnpackColor(p Vec4) scene.RGB { return scene.RGB{p[0], p[1], p[2]}.Clamp() }

// PackBool packs a flag as a u32.
func PackBool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// UnpackBool treats any non-zero word as true.
func UnpackBool(v uint32) bool { return v != 0 }

func putU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }

func putF32(b []byte, off int, v float32) { putU32(b, off, math.Float32bits(v)) }

func putVec2(b []byte, off int, v Vec2) {
	putF32(b, off, v[0])
	putF32(b, off+4, v[1])
}

func putVec4(b []byte, off int, v Vec4) {
	for i, c := range v {
		putF32(b, off+4*i, c)
	}
}

func putMat3(b []byte, off int, m Mat3) {
	for i, col := range m {
		putVec4(b, off+16*i, col)
	}
}

func u32(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }

func f32(b []byte, off int) float32 { return math.Float32frombits(u32(b, off)) }

func vec2(b []byte, off int) Vec2 { return Vec2{f32(b, off), f32(b, off+4)} }

func vec4(b []byte, off int) Vec4 {
	return Vec4{f32(b, off), f32(b, off+4), f32(b, off+8), f32(b, off+12)}
}

func mat3(b []byte, off int) Mat3 {
	return Mat3{vec4(b, off), vec4(b, off+16), vec4(b, off+32)}
}

// fit returns b zero-extended to n bytes.
func fit(b []byte, n int) []byte {
	if len(b) >= n {
		return b[:n]
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}
