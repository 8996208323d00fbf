// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// outlineWGSL is the complete outline shader: silhouette mask, separable
// gaussian blur, and composite entry points in one module.
//
// Kept free of runtime-sized arrays so it compiles with current naga.
const outlineWGSL = `
// Outline post-process shaders.
//
// One uniform block serves all passes. dims packs the per-pass scalars:
//   dims.x = outline width in pixels
//   dims.y = blur intensity
//   dims.z = 1 / target width
//   dims.w = 1 / target height

struct OutlineParams {
    color: vec4<f32>,
    dims: vec4<f32>,
};

struct MaskUniforms {
    mvp: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> params: OutlineParams;
@group(0) @binding(1) var mask_tex: texture_2d<f32>;
@group(0) @binding(2) var mask_samp: sampler;

@group(1) @binding(0) var<uniform> mask_uniforms: MaskUniforms;

// ---------------------------------------------------------------------------
// Mask pass: draw object geometry as a flat silhouette.
// ---------------------------------------------------------------------------

@vertex
fn vs_mask(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return mask_uniforms.mvp * vec4<f32>(position, 1.0);
}

@fragment
fn fs_mask() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}

// ---------------------------------------------------------------------------
// Fullscreen triangle shared by the blur and composite passes.
// ---------------------------------------------------------------------------

struct FullscreenOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_fullscreen(@builtin(vertex_index) vi: u32) -> FullscreenOut {
    var out: FullscreenOut;
    let x = f32(i32((vi << 1u) & 2u)) * 2.0 - 1.0;
    let y = f32(i32(vi & 2u)) * 2.0 - 1.0;
    out.pos = vec4<f32>(x, y, 0.0, 1.0);
    out.uv = vec2<f32>(x, -y) * 0.5 + vec2<f32>(0.5, 0.5);
    return out;
}

// gauss evaluates the unnormalized gaussian falloff at offset i for the
// configured intensity.
fn gauss(i: f32) -> f32 {
    let sigma = max(params.dims.x * 0.5, 1.0);
    return exp(-(i * i) / (2.0 * sigma * sigma)) * params.dims.y;
}

// blur_sample accumulates mask coverage along one axis.
fn blur_sample(uv: vec2<f32>, axis: vec2<f32>) -> f32 {
    let width = i32(params.dims.x);
    var sum = 0.0;
    var norm = 0.0;
    for (var i: i32 = -32; i <= 32; i = i + 1) {
        if (i < -width || i > width) {
            continue;
        }
        let w = gauss(f32(i));
        let offset = axis * f32(i) * params.dims.zw;
        sum = sum + textureSampleLevel(mask_tex, mask_samp, uv + offset, 0.0).r * w;
        norm = norm + w;
    }
    return sum / max(norm, 0.0001);
}

@fragment
fn fs_hblur(in: FullscreenOut) -> @location(0) vec4<f32> {
    let c = blur_sample(in.uv, vec2<f32>(1.0, 0.0));
    return vec4<f32>(c, c, c, 1.0);
}

@fragment
fn fs_vblur(in: FullscreenOut) -> @location(0) vec4<f32> {
    let c = blur_sample(in.uv, vec2<f32>(0.0, 1.0));
    return vec4<f32>(c, c, c, 1.0);
}

// ---------------------------------------------------------------------------
// Composite pass: tint the blurred mask ring and blend it onto the target.
// Fully covered pixels are object interior; the rim is where blurred
// coverage falls below full, so suppressing saturated pixels leaves only
// the outline ring.
// ---------------------------------------------------------------------------

@fragment
fn fs_outline(in: FullscreenOut) -> @location(0) vec4<f32> {
    let coverage = textureSampleLevel(mask_tex, mask_samp, in.uv, 0.0).r;
    let rim = coverage * (1.0 - step(0.999, coverage));
    return vec4<f32>(params.color.rgb, params.color.a * rim);
}
`
