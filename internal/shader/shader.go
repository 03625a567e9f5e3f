// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader embeds the WGSL programs: one ray-marching program per
// fractal group and the panel overlay program.
package shader

import (
	_ "embed"

	"github.com/gogpu/raymarch/scene"
)

// Entry points shared by every program.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Binding slots of the scene resource group.
const (
	BindingScreen  = 0
	BindingCamera  = 1
	BindingOptions = 2
)

//go:embed shaders/common.wgsl
var commonSource string

//go:embed shaders/kifs.wgsl
var kifsSource string

//go:embed shaders/julia.wgsl
var juliaSource string

//go:embed shaders/generalized_julia.wgsl
var generalizedJuliaSource string

//go:embed shaders/overlay.wgsl
var overlaySource string

var estimators = map[scene.FractalGroup]string{
	scene.KaleidoscopicIFS:    kifsSource,
	scene.JuliaSet:            juliaSource,
	scene.GeneralizedJuliaSet: generalizedJuliaSource,
}

// Program returns the complete ray-marching program for g. Unknown groups
// get the kaleidoscopic IFS program.
func Program(g scene.FractalGroup) string {
	est, ok := estimators[g]
	if !ok {
		est = kifsSource
	}
	return commonSource + "\n" + est
}

// Overlay returns the panel compositing program.
func Overlay() string {
	return overlaySource
}
