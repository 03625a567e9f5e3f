// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uniform keeps one logical value resident in one GPU uniform
// buffer.
package uniform

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/internal/packed"
)

// ErrDestroyed is returned by Update after Destroy.
var ErrDestroyed = errors.New("uniform: buffer destroyed")

// Buffer is a uniform buffer sized to exactly one packed T. Updates
// overwrite the whole record in place; the GPU buffer is never
// reallocated.
type Buffer[T any] struct {
	device hal.Device
	queue  hal.Queue
	codec  packed.Codec[T]
	label  string

	buf   hal.Buffer
	value T
}

// New allocates the buffer and uploads initial.
func New[T any](device hal.Device, queue hal.Queue, codec packed.Codec[T], initial T, label string) (*Buffer[T], error) {
	if label == "" {
		label = codec.Name + "_uniform"
	}
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  codec.Size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, codec.Encode(initial))

	raymarch.Logger().Debug("uniform buffer created", "label", label, "size", codec.Size)

	return &Buffer[T]{
		device: device,
		queue:  queue,
		codec:  codec,
		label:  label,
		buf:    buf,
		value:  initial,
	}, nil
}

// Update packs v and enqueues a write of the whole record. The write is
// ordered before any command buffer submitted afterwards on the same queue.
func (b *Buffer[T]) Update(v T) error {
	if b.buf == nil {
		return fmt.Errorf("%s: %w", b.label, ErrDestroyed)
	}
	b.queue.WriteBuffer(b.buf, 0, b.codec.Encode(v))
	b.value = v
	return nil
}

// Value returns the last value written.
func (b *Buffer[T]) Value() T { return b.value }

// Size returns the buffer size in bytes.
func (b *Buffer[T]) Size() uint64 { return b.codec.Size }

// Label returns the debug label.
func (b *Buffer[T]) Label() string { return b.label }

// Buffer returns the underlying GPU buffer, nil after Destroy.
func (b *Buffer[T]) Buffer() hal.Buffer { return b.buf }

// Binding describes the whole buffer for a bind group entry.
func (b *Buffer[T]) Binding() gputypes.BufferBinding {
	return gputypes.BufferBinding{Buffer: b.buf.NativeHandle(), Offset: 0, Size: b.codec.Size}
}

// Destroy releases the GPU buffer. Safe to call more than once.
func (b *Buffer[T]) Destroy() {
	if b.buf == nil {
		return
	}
	b.device.DestroyBuffer(b.buf)
	b.buf = nil
}
