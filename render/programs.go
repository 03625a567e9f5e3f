// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch/internal/shader"
	"github.com/gogpu/raymarch/scene"
)

// Programs holds one render pipeline per fractal group. All of them share
// the scene resource group layout.
type Programs struct {
	device    hal.Device
	layout    hal.PipelineLayout
	modules   []hal.ShaderModule
	pipelines map[scene.FractalGroup]hal.RenderPipeline
}

// NewPrograms compiles every fractal program for the given target format.
func NewPrograms(device hal.Device, groupLayout hal.BindGroupLayout, format gputypes.TextureFormat) (*Programs, error) {
	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "fractal_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{groupLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("create fractal pipeline layout: %w", err)
	}
	p := &Programs{
		device:    device,
		layout:    layout,
		pipelines: make(map[scene.FractalGroup]hal.RenderPipeline, len(scene.FractalGroups())),
	}
	for _, g := range scene.FractalGroups() {
		if err := p.build(g, format); err != nil {
			p.Destroy()
			return nil, err
		}
	}
	return p, nil
}

func (p *Programs) build(g scene.FractalGroup, format gputypes.TextureFormat) error {
	key, _ := g.MarshalText()
	label := string(key)

	module, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_shader",
		Source: hal.ShaderSource{WGSL: shader.Program(g)},
	})
	if err != nil {
		return fmt.Errorf("compile %s shader: %w", label, err)
	}
	p.modules = append(p.modules, module)

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntry,
		},
		Fragment: &hal.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create %s pipeline: %w", label, err)
	}
	p.pipelines[g] = pipeline
	return nil
}

// For returns the pipeline drawing g. Unknown groups get the kaleidoscopic
// IFS pipeline.
func (p *Programs) For(g scene.FractalGroup) hal.RenderPipeline {
	if pl, ok := p.pipelines[g]; ok {
		return pl
	}
	return p.pipelines[scene.KaleidoscopicIFS]
}

// Len returns the number of pipelines.
func (p *Programs) Len() int { return len(p.pipelines) }

// Destroy releases the pipelines, shader modules and layout.
func (p *Programs) Destroy() {
	for g, pl := range p.pipelines {
		p.device.DestroyRenderPipeline(pl)
		delete(p.pipelines, g)
	}
	for _, m := range p.modules {
		p.device.DestroyShaderModule(m)
	}
	p.modules = nil
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
}
