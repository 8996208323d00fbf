// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
)

// RenderEvent identifies the point in the host's per-camera render
// sequence at which an attached command buffer executes.
type RenderEvent uint8

const (
	// BeforeEffects executes the buffer after scene rendering, before the
	// host's post-process effects. This is the default for outlines.
	BeforeEffects RenderEvent = iota

	// AfterOpaques executes the buffer after opaque geometry, before
	// transparents. Outlines drawn here are occluded by transparents.
	AfterOpaques

	// AfterEverything executes the buffer last, on top of all host output.
	AfterEverything
)

// String returns a human-readable name for the render event.
func (e RenderEvent) String() string {
	switch e {
	case BeforeEffects:
		return "BeforeEffects"
	case AfterOpaques:
		return "AfterOpaques"
	case AfterEverything:
		return "AfterEverything"
	default:
		return "Unknown"
	}
}

// Camera is the per-camera integration point the host implements.
//
// An effect registers its persistent command buffer with the camera on
// Enable and unregisters it on Disable; in between, the host executes the
// buffer at the registered event every frame. The library never executes
// buffers itself.
type Camera interface {
	// AttachBuffer registers a command buffer for execution at the given
	// render event. The same buffer stays attached across frames.
	AttachBuffer(event RenderEvent, buf *recording.CommandBuffer) error

	// DetachBuffer unregisters a previously attached command buffer.
	// Detaching a buffer that was never attached is a no-op.
	DetachBuffer(event RenderEvent, buf *recording.CommandBuffer)

	// Target returns the camera's current target surface. Effects bind it
	// when re-recording their command buffer.
	Target() render.RenderTarget
}

// FrameHook is the per-frame contract between the host frame loop and an
// effect. The host invokes the phases in order, once per frame:
//
//  1. authoring sync: the host's editor integration calls
//     LayerCollection.UpdateChanged (outside this interface)
//  2. Update: the effect evaluates dirtiness and conditionally
//     re-records its command buffer
//  3. command execution: the host executes attached buffers on the GPU
//  4. EndFrame: the effect accepts the changes phase 2 consumed
//
// Update always observes change state as of the start of the frame;
// EndFrame always runs after Update of the same frame, never before.
type FrameHook interface {
	// Update is the per-frame tick: decide and, if needed, rebuild.
	Update()

	// EndFrame is the late per-frame phase: accept consumed changes.
	EndFrame()
}
