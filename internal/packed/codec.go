// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package packed

import "github.com/gogpu/raymarch/scene"

// Codec binds a logical type to its record layout. Encode always returns
// exactly Size bytes.
type Codec[T any] struct {
	Name   string
	Size   uint64
	Encode func(T) []byte
	Decode func([]byte) T
}

// Screen encodes scene.ScreenData.
var Screen = Codec[scene.ScreenData]{
	Name: "screen",
	Size: ScreenRecordSize,
	Encode: func(s scene.ScreenData) []byte {
		b := PackScreen(s).Bytes()
		return b[:]
	},
	Decode: func(b []byte) scene.ScreenData { return UnpackScreen(DecodeScreenRecord(b)) },
}

// Camera encodes scene.CameraData.
var Camera = Codec[scene.CameraData]{
	Name: "camera",
	Size: CameraRecordSize,
	Encode: func(c scene.CameraData) []byte {
		b := PackCamera(c).Bytes()
		return b[:]
	},
	Decode: func(b []byte) scene.CameraData { return UnpackCamera(DecodeCameraRecord(b)) },
}

// Options encodes scene.OptionsData.
var Options = Codec[scene.OptionsData]{
	Name: "options",
	Size: OptionsRecordSize,
	Encode: func(o scene.OptionsData) []byte {
		b := PackOptions(o).Bytes()
		return b[:]
	},
	Decode: func(b []byte) scene.OptionsData { return UnpackOptions(DecodeOptionsRecord(b)) },
}
