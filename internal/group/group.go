// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package group binds a list of GPU buffers into one bind group layout and
// one bind group. Resource i is always bound at binding i.
package group

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
)

// Resource is a buffer that can be bound whole.
type Resource interface {
	Binding() gputypes.BufferBinding
}

// Layout templates. The Binding field is ignored; New assigns it from the
// resource position.
var (
	FragmentUniform = gputypes.BindGroupLayoutEntry{
		Visibility: gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
	VertexFragmentUniform = gputypes.BindGroupLayoutEntry{
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
)

// Descriptor lists the resources and one layout entry per resource.
type Descriptor struct {
	Label     string
	Resources []Resource
	Entries   []gputypes.BindGroupLayoutEntry
}

// FixedDescriptor applies the same layout entry to every resource.
type FixedDescriptor struct {
	Label     string
	Resources []Resource
	Entry     gputypes.BindGroupLayoutEntry
}

// Group is a bind group together with its layout. It does not own the
// bound buffers; they must outlive it.
type Group struct {
	device hal.Device
	label  string
	count  int

	Layout hal.BindGroupLayout
	Bind   hal.BindGroup
}

// New creates the layout and bind group. It panics when the number of
// entries differs from the number of resources.
func New(device hal.Device, desc Descriptor) (*Group, error) {
	if len(desc.Entries) != len(desc.Resources) {
		panic(fmt.Sprintf("group: %s: %d layout entries for %d resources",
			desc.Label, len(desc.Entries), len(desc.Resources)))
	}

	layoutEntries := make([]gputypes.BindGroupLayoutEntry, len(desc.Entries))
	bindEntries := make([]gputypes.BindGroupEntry, len(desc.Resources))
	for i := range desc.Resources {
		layoutEntries[i] = desc.Entries[i]
		layoutEntries[i].Binding = uint32(i) //nolint:gosec // resource count is tiny
		bindEntries[i] = gputypes.BindGroupEntry{
			Binding:  uint32(i), //nolint:gosec // resource count is tiny
			Resource: desc.Resources[i].Binding(),
		}
	}

	layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   desc.Label + "_layout",
		Entries: layoutEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s layout: %w", desc.Label, err)
	}

	bind, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   desc.Label,
		Layout:  layout,
		Entries: bindEntries,
	})
	if err != nil {
		device.DestroyBindGroupLayout(layout)
		return nil, fmt.Errorf("create %s bind group: %w", desc.Label, err)
	}

	raymarch.Logger().Debug("resource group created", "label", desc.Label, "bindings", len(bindEntries))

	return &Group{
		device: device,
		label:  desc.Label,
		count:  len(bindEntries),
		Layout: layout,
		Bind:   bind,
	}, nil
}

// NewFixed is New with desc.Entry replicated for every resource.
func NewFixed(device hal.Device, desc FixedDescriptor) (*Group, error) {
	entries := make([]gputypes.BindGroupLayoutEntry, len(desc.Resources))
	for i := range entries {
		entries[i] = desc.Entry
	}
	return New(device, Descriptor{Label: desc.Label, Resources: desc.Resources, Entries: entries})
}

// Len returns the number of bindings.
func (g *Group) Len() int { return g.count }

// Label returns the debug label.
func (g *Group) Label() string { return g.label }

// Destroy releases the bind group and its layout. Safe to call more than
// once.
func (g *Group) Destroy() {
	if g.Bind != nil {
		g.device.DestroyBindGroup(g.Bind)
		g.Bind = nil
	}
	if g.Layout != nil {
		g.device.DestroyBindGroupLayout(g.Layout)
		g.Layout = nil
	}
}
