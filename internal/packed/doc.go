// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package packed converts the scene data model to and from the fixed byte
// layouts read by the WGSL programs.
//
// Every logical type has one explicit Pack and one Unpack function; there is
// no reflection. Packing and unpacking never fail. Records are little endian
// and follow WGSL uniform address-space alignment: vec3<f32> occupies a
// 16-byte slot and mat3x3<f32> is three such slots, one per column.
//
// Screen (16 bytes):
//
//	offset  size  field
//	     0     4  width       u32
//	     4     4  height      u32
//	     8     4  aspect      f32
//	    12     4  (padding)
//
// Camera (80 bytes):
//
//	offset  size  field
//	     0     4  origin_distance  f32
//	     4     4  min_distance     f32
//	     8     8  angles           vec2<f32>  (phi, theta)
//	    16    48  matrix           mat3x3<f32>
//	    64    12  origin           vec3<f32>
//	    76     4  (padding)
//
// Options (80 bytes):
//
//	offset  size  field
//	     0     4  max_iterations    u32
//	     4     4  max_distance      f32
//	     8     4  epsilon           f32
//	    12     4  primitive_id      u32
//	    16    12  fractal_color     vec3<f32>
//	    28     4  (padding)
//	    32    12  background_color  vec3<f32>
//	    44     4  (padding)
//	    48    16  constant          vec4<f32>
//	    64     4  power             f32
//	    68     4  fractal_group     u32
//	    72     4  heatmap           u32
//	    76     4  (padding)
package packed
