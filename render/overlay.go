// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/gui"
	"github.com/gogpu/raymarch/internal/shader"
	"github.com/gogpu/raymarch/scene"
)

const (
	viewportUniformSize = 16
	minVertexCapacity   = 64
)

// overlayTexture is an uploaded panel texture and the bind group sampling
// it.
type overlayTexture struct {
	tex           hal.Texture
	view          hal.TextureView
	bind          hal.BindGroup
	width, height int
}

type overlayDraw struct {
	bind        hal.BindGroup
	first, size uint32
}

// Overlay composites panel primitives over the rendered scene.
//
// Binding layout:
//
//	0: viewport size (uniform, vertex)
//	1: panel texture (texture_2d, fragment)
//	2: sampler (fragment)
type Overlay struct {
	device hal.Device
	queue  hal.Queue

	module     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler
	viewport   hal.Buffer

	vertices    hal.Buffer
	vertexCap   uint64
	vertexBytes []byte

	textures map[gui.TextureID]*overlayTexture
	draws    []overlayDraw
}

// NewOverlay creates the compositing pipeline for the given target format.
func NewOverlay(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Overlay, error) {
	o := &Overlay{
		device:   device,
		queue:    queue,
		textures: make(map[gui.TextureID]*overlayTexture),
	}
	if err := o.createPipeline(format); err != nil {
		o.Destroy()
		return nil, err
	}
	return o, nil
}

func (o *Overlay) createPipeline(format gputypes.TextureFormat) error {
	module, err := o.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "overlay_shader",
		Source: hal.ShaderSource{WGSL: shader.Overlay()},
	})
	if err != nil {
		return fmt.Errorf("compile overlay shader: %w", err)
	}
	o.module = module

	o.bindLayout, err = o.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "overlay_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create overlay layout: %w", err)
	}

	o.pipeLayout, err = o.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "overlay_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{o.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create overlay pipeline layout: %w", err)
	}

	o.sampler, err = o.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "overlay_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create overlay sampler: %w", err)
	}

	o.viewport, err = o.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "overlay_viewport",
		Size:  viewportUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create overlay viewport: %w", err)
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	o.pipeline, err = o.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "overlay_pipeline",
		Layout: o.pipeLayout,
		Vertex: hal.VertexState{
			Module:     o.module,
			EntryPoint: shader.VertexEntry,
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: gui.VertexSize,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
						{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     o.module,
			EntryPoint: shader.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &premulBlend,
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
		return fmt.Errorf("create overlay pipeline: %w", err)
	}
	return nil
}

// Prepare applies texture uploads and stages the primitives of out for the
// next Record. Primitives sampling an unknown texture are skipped.
func (o *Overlay) Prepare(out gui.Output, screen scene.ScreenData) error {
	for _, set := range out.Textures.Set {
		if err := o.upload(set); err != nil {
			return err
		}
	}

	var vp [viewportUniformSize]byte
	binary.LittleEndian.PutUint32(vp[0:], math.Float32bits(float32(screen.Width)))
	binary.LittleEndian.PutUint32(vp[4:], math.Float32bits(float32(screen.Height)))
	o.queue.WriteBuffer(o.viewport, 0, vp[:])

	o.draws = o.draws[:0]
	o.vertexBytes = o.vertexBytes[:0]
	var count uint32
	for _, prim := range out.Primitives {
		t, ok := o.textures[prim.Texture]
		if !ok {
			raymarch.Logger().Warn("overlay: primitive samples unknown texture", "texture", prim.Texture)
			continue
		}
		if len(prim.Vertices) == 0 {
			continue
		}
		for _, v := range prim.Vertices {
			o.vertexBytes = appendVertex(o.vertexBytes, v)
		}
		n := uint32(len(prim.Vertices)) //nolint:gosec // panel primitives are small
		o.draws = append(o.draws, overlayDraw{bind: t.bind, first: count, size: n})
		count += n
	}
	if len(o.vertexBytes) == 0 {
		return nil
	}
	if err := o.ensureVertexCapacity(uint64(len(o.vertexBytes))); err != nil {
		return err
	}
	o.queue.WriteBuffer(o.vertices, 0, o.vertexBytes)
	return nil
}

// Record draws the staged primitives into rp.
func (o *Overlay) Record(rp hal.RenderPassEncoder) {
	if len(o.draws) == 0 {
		return
	}
	rp.SetPipeline(o.pipeline)
	rp.SetVertexBuffer(0, o.vertices, 0)
	for _, d := range o.draws {
		rp.SetBindGroup(0, d.bind, nil)
		rp.Draw(d.size, 1, d.first, 0)
	}
}

// Free releases textures. Call it after the frame that last sampled them
// has been submitted.
func (o *Overlay) Free(ids []gui.TextureID) {
	for _, id := range ids {
		if t, ok := o.textures[id]; ok {
			o.destroyTexture(t)
			delete(o.textures, id)
		}
	}
}

// Textures returns the number of live panel textures.
func (o *Overlay) Textures() int { return len(o.textures) }

func (o *Overlay) upload(set gui.TextureSet) error {
	img := set.Image
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) != img.Width*img.Height*4 {
		return fmt.Errorf("overlay: texture %d: invalid %dx%d image with %d bytes",
			set.ID, img.Width, img.Height, len(img.Pixels))
	}
	t, ok := o.textures[set.ID]
	if ok && (t.width != img.Width || t.height != img.Height) {
		o.destroyTexture(t)
		ok = false
	}
	if !ok {
		var err error
		if t, err = o.createTexture(set.ID, img.Width, img.Height); err != nil {
			return err
		}
		o.textures[set.ID] = t
	}

	w, h := uint32(img.Width), uint32(img.Height) //nolint:gosec // validated above
	o.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
		},
		img.Pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	return nil
}

func (o *Overlay) createTexture(id gui.TextureID, width, height int) (*overlayTexture, error) {
	label := fmt.Sprintf("overlay_texture_%d", id)
	tex, err := o.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}, //nolint:gosec // validated by upload
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	t := &overlayTexture{tex: tex, width: width, height: height}

	t.view, err = o.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: label + "_view",
	})
	if err != nil {
		o.destroyTexture(t)
		return nil, fmt.Errorf("create %s view: %w", label, err)
	}

	t.bind, err = o.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_bind",
		Layout: o.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: o.viewport.NativeHandle(), Offset: 0, Size: viewportUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: t.view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: o.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		o.destroyTexture(t)
		return nil, fmt.Errorf("create %s bind group: %w", label, err)
	}
	return t, nil
}

func (o *Overlay) destroyTexture(t *overlayTexture) {
	if t.bind != nil {
		o.device.DestroyBindGroup(t.bind)
	}
	if t.view != nil {
		o.device.DestroyTextureView(t.view)
	}
	if t.tex != nil {
		o.device.DestroyTexture(t.tex)
	}
	*t = overlayTexture{}
}

func (o *Overlay) ensureVertexCapacity(size uint64) error {
	if o.vertices != nil && o.vertexCap >= size {
		return nil
	}
	capacity := max(o.vertexCap, minVertexCapacity*gui.VertexSize)
	for capacity < size {
		capacity *= 2
	}
	buf, err := o.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "overlay_vertices",
		Size:  capacity,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create overlay vertex buffer: %w", err)
	}
	if o.vertices != nil {
		o.device.DestroyBuffer(o.vertices)
	}
	o.vertices, o.vertexCap = buf, capacity
	return nil
}

func appendVertex(b []byte, v gui.Vertex) []byte {
	for _, f := range [4]float32{v.Position[0], v.Position[1], v.UV[0], v.UV[1]} {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

// Destroy releases every overlay resource.
func (o *Overlay) Destroy() {
	if o.device == nil {
		return
	}
	for id, t := range o.textures {
		o.destroyTexture(t)
		delete(o.textures, id)
	}
	if o.vertices != nil {
		o.device.DestroyBuffer(o.vertices)
		o.vertices = nil
	}
	if o.pipeline != nil {
		o.device.DestroyRenderPipeline(o.pipeline)
		o.pipeline = nil
	}
	if o.viewport != nil {
		o.device.DestroyBuffer(o.viewport)
		o.viewport = nil
	}
	if o.sampler != nil {
		o.device.DestroySampler(o.sampler)
		o.sampler = nil
	}
	if o.pipeLayout != nil {
		o.device.DestroyPipelineLayout(o.pipeLayout)
		o.pipeLayout = nil
	}
	if o.bindLayout != nil {
		o.device.DestroyBindGroupLayout(o.bindLayout)
		o.bindLayout = nil
	}
	if o.module != nil {
		o.device.DestroyShaderModule(o.module)
		o.module = nil
	}
	o.device = nil
}
