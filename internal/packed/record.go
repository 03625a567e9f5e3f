// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package packed

import "github.com/gogpu/raymarch/scene"

// Record sizes in bytes.
const (
	ScreenRecordSize  = 16
	CameraRecordSize  = 80
	OptionsRecordSize = 80
)

// ScreenRecord is the GPU form of scene.ScreenData.
type ScreenRecord struct {
	Width  uint32
	Height uint32
	Aspect float32
}

// PackScreen packs the surface size and its aspect ratio.
func PackScreen(s scene.ScreenData) ScreenRecord {
	return ScreenRecord{Width: s.Width, Height: s.Height, Aspect: s.AspectRatio()}
}

// UnpackScreen drops the derived aspect ratio.
func UnpackScreen(r ScreenRecord) scene.ScreenData {
	return scene.ScreenData{Width: r.Width, Height: r.Height}
}

// Bytes encodes r in its uniform layout.
func (r ScreenRecord) Bytes() [ScreenRecordSize]byte {
	var b [ScreenRecordSize]byte
	putU32(b[:], 0, r.Width)
	putU32(b[:], 4, r.Height)
	putF32(b[:], 8, r.Aspect)
	return b
}

// DecodeScreenRecord reads a record. Missing trailing bytes read as zero.
func DecodeScreenRecord(b []byte) ScreenRecord {
	b = fit(b, ScreenRecordSize)
	return ScreenRecord{Width: u32(b, 0), Height: u32(b, 4), Aspect: f32(b, 8)}
}

// CameraRecord is the GPU form of scene.CameraData. Matrix and Origin are
// derived on the CPU so the fragment programs need not rebuild them per
// pixel.
type CameraRecord struct {
	OriginDistance float32
	MinDistance    float32
	Angles         Vec2
	Matrix         Mat3
	Origin         Vec4
}

// PackCamera packs the camera with its derived rotation and position.
func PackCamera(c scene.CameraData) CameraRecord {
	return CameraRecord{
		OriginDistance: c.OriginDistance,
		MinDistance:    c.MinDistance,
		Angles:         PackAngles(c.Angles),
		Matrix:         PackMat3(c.Matrix()),
		Origin:         PackVec3(c.Origin()),
	}
}

// UnpackCamera recovers the camera; derived fields are ignored.
func UnpackCamera(r CameraRecord) scene.CameraData {
	return scene.CameraData{
		OriginDistance: r.OriginDistance,
		MinDistance:    r.MinDistance,
		Angles:         UnpackAngles(r.Angles),
	}
}

// Bytes encodes r in its uniform layout.
func (r CameraRecord) Bytes() [CameraRecordSize]byte {
	var b [CameraRecordSize]byte
	putF32(b[:], 0, r.OriginDistance)
	putF32(b[:], 4, r.MinDistance)
	putVec2(b[:], 8, r.Angles)
	putMat3(b[:], 16, r.Matrix)
	putVec4(b[:], 64, r.Origin)
	return b
}

// DecodeCameraRecord reads a record. Missing trailing bytes read as zero.
func DecodeCameraRecord(b []byte) CameraRecord {
	b = fit(b, CameraRecordSize)
	return CameraRecord{
		OriginDistance: f32(b, 0),
		MinDistance:    f32(b, 4),
		Angles:         vec2(b, 8),
		Matrix:         mat3(b, 16),
		Origin:         vec4(b, 64),
	}
}

// OptionsRecord is the GPU form of scene.OptionsData.
type OptionsRecord struct {
	MaxIterations   uint32
	MaxDistance     float32
	Epsilon         float32
	PrimitiveID     uint32
	FractalColor    Vec4
	BackgroundColor Vec4
	Constant        Vec4
	Power           float32
	FractalGroup    uint32
	Heatmap         uint32
}

// PackOptions packs the render options.
func PackOptions(o scene.OptionsData) OptionsRecord {
	return OptionsRecord{
		MaxIterations:   o.MaxIterations,
		MaxDistance:     o.MaxDistance,
		Epsilon:         o.Epsilon,
		PrimitiveID:     o.PrimitiveShape.ID(),
		FractalColor:    PackColor(o.FractalColor),
		BackgroundColor: PackColor(o.BackgroundColor),
		Constant:        Vec4(o.Constant),
		Power:           o.Power,
		FractalGroup:    o.FractalGroup.ID(),
		Heatmap:         PackBool(o.Heatmap),
	}
}

// UnpackOptions recovers the render options. Unknown enum ids decode to
// their first variant and colors are clamped to [0,1].
func UnpackOptions(r OptionsRecord) scene.OptionsData {
	return scene.OptionsData{
		MaxIterations:   r.MaxIterations,
		MaxDistance:     r.MaxDistance,
		Epsilon:         r.Epsilon,
		FractalColor:    UnpackColor(r.FractalColor),
		BackgroundColor: UnpackColor(r.BackgroundColor),
		FractalGroup:    scene.FractalGroupFromID(r.FractalGroup),
		PrimitiveShape:  scene.PrimitiveShapeFromID(r.PrimitiveID),
		Power:           r.Power,
		Constant:        [4]float32(r.Constant),
		Heatmap:         UnpackBool(r.Heatmap),
	}
}

// Bytes encodes r in its uniform layout.
func (r OptionsRecord) Bytes() [OptionsRecordSize]byte {
	var b [OptionsRecordSize]byte
	putU32(b[:], 0, r.MaxIterations)
	putF32(b[:], 4, r.MaxDistance)
	putF32(b[:], 8, r.Epsilon)
	putU32(b[:], 12, r.PrimitiveID)
	putVec4(b[:], 16, r.FractalColor)
	putVec4(b[:], 32, r.BackgroundColor)
	putVec4(b[:], 48, r.Constant)
	putF32(b[:], 64, r.Power)
	putU32(b[:], 68, r.FractalGroup)
	putU32(b[:], 72, r.Heatmap)
	return b
}

// DecodeOptionsRecord reads a record. Missing trailing bytes read as zero.
func DecodeOptionsRecord(b []byte) OptionsRecord {
	b = fit(b, OptionsRecordSize)
	return OptionsRecord{
		MaxIterations:   u32(b, 0),
		MaxDistance:     f32(b, 4),
		Epsilon:         f32(b, 8),
		PrimitiveID:     u32(b, 12),
		FractalColor:    vec4(b, 16),
		BackgroundColor: vec4(b, 32),
		Constant:        vec4(b, 48),
		Power:           f32(b, 64),
		FractalGroup:    u32(b, 68),
		Heatmap:         u32(b, 72),
	}
}
