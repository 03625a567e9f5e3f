// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package platform opens the application window with GLFW and connects it
// to the Vulkan HAL backend. It implements render.Platform and
// render.Surface, and translates GLFW callbacks into event values.
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before calling NewWindow.
package platform
