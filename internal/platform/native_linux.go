// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package platform

import (
	"errors"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles returns the X11 display and window.
func nativeHandles(win *glfw.Window) (display, window uintptr, err error) {
	dpy := glfw.GetX11Display()
	if dpy == nil {
		return 0, 0, errors.New("platform: no X11 display")
	}
	return uintptr(unsafe.Pointer(dpy)), uintptr(win.GetX11Window()), nil
}
