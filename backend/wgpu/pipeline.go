// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/outline/shader"
)

// pipelineCache holds the render pipelines for the outline passes:
// mask rasterization, horizontal and vertical blur, and the final
// composite onto the target.
//
// The cache is created once per backend on the first Begin, keyed by the
// target's texture format. It is only accessed from the frame loop.
type pipelineCache struct {
	device  hal.Device
	shaders *shader.Modules
	format  gputypes.TextureFormat

	// Cached render pipelines.
	maskPipeline    StubPipelineID
	hblurPipeline   StubPipelineID
	vblurPipeline   StubPipelineID
	outlinePipeline StubPipelineID

	// Bind group layouts.
	maskLayout    StubBindGroupLayoutID
	samplerLayout StubBindGroupLayoutID
	paramsLayout  StubBindGroupLayoutID

	initialized bool
}

// StubPipelineID is a placeholder for actual wgpu RenderPipelineID.
// This will be replaced with hal.RenderPipeline when render pass support
// lands in hal.
type StubPipelineID uint64

// StubBindGroupLayoutID is a placeholder for actual wgpu BindGroupLayoutID.
type StubBindGroupLayoutID uint64

// InvalidPipelineID represents an invalid/uninitialized pipeline.
const InvalidPipelineID StubPipelineID = 0

// newPipelineCache creates the pipelines for rendering outlines onto
// targets of the given format.
func newPipelineCache(device hal.Device, shaders *shader.Modules, format gputypes.TextureFormat) (*pipelineCache, error) {
	if shaders == nil || !shaders.IsValid() {
		return nil, ErrInvalidResources
	}

	pc := &pipelineCache{
		device:  device,
		shaders: shaders,
		format:  format,
	}

	if err := pc.createMaskPipeline(); err != nil {
		return nil, err
	}
	if err := pc.createBlurPipelines(); err != nil {
		return nil, err
	}
	if err := pc.createOutlinePipeline(); err != nil {
		return nil, err
	}

	pc.initialized = true
	return pc, nil
}

// createMaskPipeline creates the silhouette rasterization pipeline.
// It renders object geometry into the R8Unorm mask texture with no
// blending; any covered texel becomes 1.
//
//nolint:unparam // error return prepared for when hal render pipelines land
func (pc *pipelineCache) createMaskPipeline() error {
	// Bind group layout for the mask pass:
	// Binding 0: MaskUniforms (mvp) uniform buffer, vertex stage
	pc.maskLayout = StubBindGroupLayoutID(1)

	// TODO: When hal render pipelines are ready:
	// layout, err := pc.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
	//     Label: "outline_mask_layout",
	//     Entries: []types.BindGroupLayoutEntry{
	//         {
	//             Binding:    0,
	//             Visibility: types.ShaderStageVertex,
	//             Buffer: &types.BufferBindingLayout{
	//                 Type:           types.BufferBindingTypeUniform,
	//                 MinBindingSize: 64, // sizeof(MaskUniforms)
	//             },
	//         },
	//     },
	// })
	// pipeline, err := pc.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
	//     Label:  "outline_mask_pipeline",
	//     Vertex: hal.VertexState{Module: pc.shaders.Module(), EntryPoint: shader.EntryMaskVertex},
	//     Fragment: &hal.FragmentState{
	//         Module:     pc.shaders.Module(),
	//         EntryPoint: shader.EntryMaskFragment,
	//         Targets:    []hal.ColorTargetState{{Format: gputypes.TextureFormatR8Unorm}},
	//     },
	// })
	pc.maskPipeline = StubPipelineID(1)

	return nil
}

// createBlurPipelines creates the separable Gaussian blur pipelines used
// by blurred outlines. Both passes share the fullscreen triangle vertex
// stage and differ only in the fragment entry point.
//
//nolint:unparam // error return prepared for when hal render pipelines land
func (pc *pipelineCache) createBlurPipelines() error {
	// Bind group layout for the blur and composite passes:
	// Binding 0: source texture
	// Binding 1: filtering sampler
	pc.samplerLayout = StubBindGroupLayoutID(2)

	// Binding 0: OutlineParams uniform buffer, fragment stage
	pc.paramsLayout = StubBindGroupLayoutID(3)

	// TODO: Actual pipeline creation with shader.EntryHBlurFragment and
	// shader.EntryVBlurFragment against R8Unorm intermediate textures.
	pc.hblurPipeline = StubPipelineID(2)
	pc.vblurPipeline = StubPipelineID(3)

	return nil
}

// createOutlinePipeline creates the composite pipeline that draws the
// colored rim onto the bound target with premultiplied alpha blending.
//
//nolint:unparam // error return prepared for when hal render pipelines land
func (pc *pipelineCache) createOutlinePipeline() error {
	// TODO: Actual pipeline creation: fullscreen triangle vertex stage,
	// shader.EntryOutlineFragment, color target pc.format with blend
	// {SrcFactor: One, DstFactor: OneMinusSrcAlpha}.
	pc.outlinePipeline = StubPipelineID(4)

	return nil
}

// destroy releases all pipeline resources.
func (pc *pipelineCache) destroy() {
	// TODO: When hal render pipelines land, release them here the way
	// shader.Modules releases its module via DestroyShaderModule.
	pc.maskPipeline = InvalidPipelineID
	pc.hblurPipeline = InvalidPipelineID
	pc.vblurPipeline = InvalidPipelineID
	pc.outlinePipeline = InvalidPipelineID
	pc.maskLayout = 0
	pc.samplerLayout = 0
	pc.paramsLayout = 0
	pc.initialized = false
}
