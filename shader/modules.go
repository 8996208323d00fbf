// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader provides the concrete outline resource capability: the
// WGSL outline shaders, compiled through naga and loaded as hal shader
// modules on a host-provided GPU device.
//
// The orchestration core consumes the result opaquely: it only ever asks
// IsValid. Backends type-assert to *Modules to reach the shader module and
// entry points.
//
// The library receives the device from the host; it never creates one.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/outline"
)

// Shader entry points within the outline module.
const (
	// EntryMaskVertex transforms object geometry for the silhouette mask.
	EntryMaskVertex = "vs_mask"
	// EntryMaskFragment writes flat silhouette coverage.
	EntryMaskFragment = "fs_mask"
	// EntryFullscreenVertex emits the fullscreen triangle for image passes.
	EntryFullscreenVertex = "vs_fullscreen"
	// EntryHBlurFragment is the horizontal gaussian pass.
	EntryHBlurFragment = "fs_hblur"
	// EntryVBlurFragment is the vertical gaussian pass.
	EntryVBlurFragment = "fs_vblur"
	// EntryOutlineFragment composites the outline onto the target.
	EntryOutlineFragment = "fs_outline"
)

// Modules holds the compiled outline shaders for one GPU device.
// It implements outline.Resources: an effect holding a destroyed or
// failed Modules degrades to empty submissions instead of erroring.
type Modules struct {
	device hal.Device
	module hal.ShaderModule
	spirv  []uint32
	valid  bool
}

// New compiles the outline WGSL and creates the shader module on the
// given device. The device comes from the host (see render.DeviceHandle);
// Modules never creates its own.
func New(device hal.Device) (*Modules, error) {
	if device == nil {
		return nil, errors.New("shader: nil device")
	}

	m := &Modules{device: device}

	spirvBytes, err := naga.Compile(outlineWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile outline shader: %w", err)
	}
	m.spirv = packSPIRV(spirvBytes)

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "outline_shader",
		Source: hal.ShaderSource{
			SPIRV: m.spirv,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: failed to create shader module: %w", err)
	}
	m.module = module
	m.valid = true

	outline.Logger().Info("outline shaders compiled", "spirvWords", len(m.spirv))
	return m, nil
}

// IsValid reports whether the shaders are usable for rendering.
// False after Destroy or for a nil receiver.
func (m *Modules) IsValid() bool {
	return m != nil && m.valid
}

// Device returns the device the module was created on.
func (m *Modules) Device() hal.Device {
	return m.device
}

// Module returns the hal shader module containing all outline entry
// points. Valid only while IsValid is true.
func (m *Modules) Module() hal.ShaderModule {
	return m.module
}

// Destroy releases the shader module. After Destroy, IsValid reports
// false and effects using this capability degrade to empty submissions.
func (m *Modules) Destroy() {
	if m == nil || m.device == nil {
		return
	}
	if m.module != nil {
		m.device.DestroyShaderModule(m.module)
		m.module = nil
	}
	m.valid = false
}

// packSPIRV converts the naga byte output into the uint32 word stream hal
// expects. SPIR-V is little-endian by definition.
func packSPIRV(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}

// Ensure Modules implements the opaque resources capability.
var _ outline.Resources = (*Modules)(nil)
