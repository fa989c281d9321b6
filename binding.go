// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import "github.com/cogentcore/webgpu/wgpu"

// Bind group layouts for the two pipelines. These are the compatibility
// surface with existing asset and pipeline setup and must not change:
//
//	3D group 0: binding 0 texture_2d_array<f32>, binding 1 sampler
//	3D group 1: binding 0 CameraUniform
//	2D group 0: binding 0 texture_2d<f32>, binding 1 sampler
//
// Texture and sampler bindings are fragment-visible; the camera is
// vertex-visible.

// TextureBindGroupLayout returns the single-texture group used by the
// 2D pipeline.
func TextureBindGroupLayout() []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2D,
				Multisampled:  false,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	}
}

// TextureArrayBindGroupLayout returns the texture-array group used by
// the 3D pipeline.
func TextureArrayBindGroupLayout() []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeFloat,
				ViewDimension: wgpu.TextureViewDimension2DArray,
				Multisampled:  false,
			},
		},
		{
			Binding:    1,
			Visibility: wgpu.ShaderStageFragment,
			Sampler: wgpu.SamplerBindingLayout{
				Type: wgpu.SamplerBindingTypeFiltering,
			},
		},
	}
}

// CameraBindGroupLayout returns the camera uniform group used by the
// 3D pipeline.
func CameraBindGroupLayout() []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: CameraUniformSize,
			},
		},
	}
}
