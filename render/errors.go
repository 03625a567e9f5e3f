// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

// Surface errors reported by Surface implementations. The state machine
// classifies them by errors.Is.
var (
	// ErrSurfaceOutdated means the surface no longer matches the window and
	// must be reconfigured.
	ErrSurfaceOutdated = errors.New("render: surface outdated")

	// ErrSurfaceLost means the surface must be reconfigured.
	ErrSurfaceLost = errors.New("render: surface lost")

	// ErrSurfaceTimeout means no image became available in time.
	ErrSurfaceTimeout = errors.New("render: surface acquire timed out")

	// ErrOutOfMemory is fatal.
	ErrOutOfMemory = errors.New("render: out of memory")
)

// ErrNotActive is returned when a frame is requested before Resume or after
// the state terminated.
var ErrNotActive = errors.New("render: state is not active")

// ErrNoAdapter is wrapped in an InitError when no adapter was offered.
var ErrNoAdapter = errors.New("render: no suitable adapter")

// Stage names the initialization step that failed.
type Stage uint8

// Initialization stages, in order.
const (
	StageSurface Stage = iota
	StageAdapter
	StageDevice
	StageResources
)

func (s Stage) String() string {
	switch s {
	case StageSurface:
		return "surface"
	case StageAdapter:
		return "adapter"
	case StageDevice:
		return "device"
	case StageResources:
		return "resources"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// InitError reports a failed Resume. Initialization is not retried.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("render: initialize %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// recoverable reports whether reconfiguring the surface fixes err.
func recoverable(err error) bool {
	return errors.Is(err, ErrSurfaceOutdated) || errors.Is(err, ErrSurfaceLost)
}
