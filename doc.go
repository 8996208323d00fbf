// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outline renders outline highlights around selected 3D objects.
//
// # Overview
//
// outline is a post-process outline effect library for the GoGPU ecosystem.
// Objects are grouped into layers, each layer carries one visual style, and
// an ordered layer collection forms the complete outline configuration for
// one camera. A per-camera Effect decides once per frame whether the
// configuration changed and, only then, re-records the outline draw
// commands into a persistent command buffer. The host engine executes the
// buffer against the GPU later in the frame.
//
// # Quick Start
//
//	effect := outline.NewEffect(outline.WithResources(res))
//	if err := effect.Enable(camera); err != nil {
//	    return err
//	}
//
//	layer := outline.NewLayer("selection")
//	layer.SetStyle(outline.Style{
//	    Color: color.RGBA{R: 0xff, G: 0x7f, A: 0xff},
//	    Width: 6,
//	    Mode:  outline.ModeBlurred,
//	})
//	layer.Add(object)
//	effect.Layers().Add(layer)
//
//	// Host frame loop, each frame:
//	effect.Update()   // re-records commands only when something changed
//	// ... host executes the effect's command buffer on the GPU ...
//	effect.EndFrame() // accepts changes consumed by this frame
//
// # Architecture
//
// The library is organized into:
//   - Public API: Effect, Layer, LayerCollection, Camera (this package)
//   - recording: persistent command buffers, the scoped pass recorder,
//     and the backend registry
//   - render: target-surface and device abstractions
//   - shader: WGSL outline shaders compiled via naga (the concrete
//     Resources implementation)
//   - backend/wgpu, backend/trace: command-executing backends
//   - config: persisted layer collection assets (TOML)
//
// # Change Tracking
//
// Every mutation of a layer or collection sets a dirty flag. Effect.Update
// skips all work while nothing is dirty, which is the core performance
// guarantee: an unchanged outline configuration costs zero re-recording
// per frame. Dirty flags are cleared in a separate, later frame phase
// (Effect.EndFrame) so that changes made mid-frame by other systems are
// picked up the next frame instead of being dropped.
//
// # Thread Safety
//
// The library assumes the host's single-threaded frame loop. No type in
// this package is safe for concurrent use; hosts with multi-threaded
// submission must serialize access per collection instance.
package outline

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
