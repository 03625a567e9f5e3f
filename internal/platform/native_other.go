// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux && !windows

package platform

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func nativeHandles(*glfw.Window) (display, window uintptr, err error) {
	return 0, 0, errors.New("platform: surfaces are only supported on linux and windows")
}
