// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"
)

// nativeHandles returns the module instance and the HWND.
func nativeHandles(win *glfw.Window) (display, window uintptr, err error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, 0, fmt.Errorf("platform: module handle: %w", err)
	}
	return uintptr(module), uintptr(unsafe.Pointer(win.GetWin32Window())), nil
}
