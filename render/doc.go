// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render owns the GPU side of the visualizer: the surface, the
// device and queue, the scene uniforms and the ray-marching programs.
//
// # Lifecycle
//
// A [State] starts Uninitialized. [State.Resume] blocks while it creates
// the surface, selects an adapter, opens a device and builds every GPU
// resource, then moves to Active. Recoverable surface errors move it to
// Degraded until the next successful frame. Fatal errors and [State.Close]
// move it to Terminated.
//
//	Uninitialized -> Active <-> Degraded
//	      |            |           |
//	      +------------+-----------+--> Terminated
//
// # Frame
//
// Each [State.RenderFrame] acquires a surface image, lets the settings
// panel consume its input, uploads the options record, draws one
// full-screen triangle with the program of the selected fractal group,
// composites the panel on top, submits and presents.
//
// # Platform
//
// Windowing and surface creation are supplied through [Platform] and
// [Surface], so the state machine runs unchanged against the noop HAL
// device in tests.
package render
