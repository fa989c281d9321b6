// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/shadeworks/shade/shaders"
)

// PipelineDescriptor configures construction of a shading pipeline.
// Attribute offsets, the vertex stride, and bind group layouts all
// derive from it, so a program whose signature disagrees with the
// descriptor fails here, at creation, never silently at draw time.
type PipelineDescriptor struct {
	// Name labels the GPU objects for debugging.
	Name string

	// ShaderSource is the WGSL for both stages.
	ShaderSource string

	// VertexEntry and FragmentEntry are the entry point names.
	VertexEntry   string
	FragmentEntry string

	// VertexFormats defines the single vertex buffer's attributes in
	// shader location order.
	VertexFormats []wgpu.VertexFormat

	// BindGroups lists the bind group layout entries per group index.
	BindGroups [][]wgpu.BindGroupLayoutEntry

	// TargetFormat is the color attachment format.
	TargetFormat wgpu.TextureFormat

	// DepthTest enables Depth32Float testing and writing with
	// less-equal comparison.
	DepthTest bool

	// AlphaToCoverage enables alpha-to-coverage in the multisample
	// state.
	AlphaToCoverage bool
}

// Pipeline owns the compiled shader module, bind group layouts, and
// render pipeline for one shading program.
type Pipeline struct {
	Name string

	RenderPipeline *wgpu.RenderPipeline
	ShaderModule   *wgpu.ShaderModule

	// BindGroupLayouts are indexed by group number; CreateBindGroup
	// uses them to bind resources per draw.
	BindGroupLayouts []*wgpu.BindGroupLayout

	device *wgpu.Device
}

// alphaBlend is standard source-over alpha blending, the blend state
// both pipelines are created with.
var alphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

// NewPipeline compiles the descriptor's shader and builds the render
// pipeline. Any mismatch between the WGSL and the descriptor's layouts
// is fatal here.
func NewPipeline(device *wgpu.Device, d *PipelineDescriptor) (*Pipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: d.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: d.ShaderSource,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shade: pipeline %q: shader module: %w", d.Name, err)
	}

	pl := &Pipeline{Name: d.Name, ShaderModule: module, device: device}

	pl.BindGroupLayouts = make([]*wgpu.BindGroupLayout, len(d.BindGroups))
	for g, entries := range d.BindGroups {
		bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s group %d", d.Name, g),
			Entries: entries,
		})
		if err != nil {
			pl.Release()
			return nil, fmt.Errorf("shade: pipeline %q: bind group layout %d: %w", d.Name, g, err)
		}
		pl.BindGroupLayouts[g] = bgl
	}

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            d.Name,
		BindGroupLayouts: pl.BindGroupLayouts,
	})
	if err != nil {
		pl.Release()
		return nil, fmt.Errorf("shade: pipeline %q: pipeline layout: %w", d.Name, err)
	}
	defer layout.Release()

	pd := &wgpu.RenderPipelineDescriptor{
		Label:  d.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: d.VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{VertexLayout(d.VertexFormats)},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: d.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    d.TargetFormat,
				Blend:     &alphaBlend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: d.AlphaToCoverage,
		},
	}
	if d.DepthTest {
		pd.DepthStencil = &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth32Float,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLessEqual,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	rp, err := device.CreateRenderPipeline(pd)
	if err != nil {
		pl.Release()
		return nil, fmt.Errorf("shade: pipeline %q: render pipeline: %w", d.Name, err)
	}
	pl.RenderPipeline = rp
	return pl, nil
}

// NewPipeline3D builds the opaque-geometry pipeline: main3d.wgsl, the
// Vertex3D layout, the texture-array group at 0 and the camera group
// at 1, depth tested.
func NewPipeline3D(device *wgpu.Device, target wgpu.TextureFormat) (*Pipeline, error) {
	return NewPipeline(device, &PipelineDescriptor{
		Name:          "main3d",
		ShaderSource:  shaders.Main3D,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		VertexFormats: Vertex3DFormats,
		BindGroups: [][]wgpu.BindGroupLayoutEntry{
			TextureArrayBindGroupLayout(),
			CameraBindGroupLayout(),
		},
		TargetFormat: target,
		DepthTest:    true,
	})
}

// NewPipeline2D builds the overlay pipeline: main2d.wgsl, the Vertex2D
// layout, a single texture group at 0, no camera, no depth.
func NewPipeline2D(device *wgpu.Device, target wgpu.TextureFormat) (*Pipeline, error) {
	return NewPipeline(device, &PipelineDescriptor{
		Name:          "main2d",
		ShaderSource:  shaders.Main2D,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		VertexFormats: Vertex2DFormats,
		BindGroups: [][]wgpu.BindGroupLayoutEntry{
			TextureBindGroupLayout(),
		},
		TargetFormat: target,
		DepthTest:    false,
	})
}

// Bind sets this pipeline on a render pass.
func (pl *Pipeline) Bind(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.RenderPipeline)
}

// CreateBindGroup binds resources against the pipeline's layout for
// the given group index.
func (pl *Pipeline) CreateBindGroup(group int, entries []wgpu.BindGroupEntry) (*wgpu.BindGroup, error) {
	if group < 0 || group >= len(pl.BindGroupLayouts) {
		return nil, fmt.Errorf("shade: pipeline %q has no bind group %d", pl.Name, group)
	}
	bg, err := pl.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   fmt.Sprintf("%s group %d", pl.Name, group),
		Layout:  pl.BindGroupLayouts[group],
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("shade: pipeline %q: bind group %d: %w", pl.Name, group, err)
	}
	return bg, nil
}

// Release frees the pipeline's GPU objects.
func (pl *Pipeline) Release() {
	if pl.RenderPipeline != nil {
		pl.RenderPipeline.Release()
		pl.RenderPipeline = nil
	}
	for _, bgl := range pl.BindGroupLayouts {
		if bgl != nil {
			bgl.Release()
		}
	}
	pl.BindGroupLayouts = nil
	if pl.ShaderModule != nil {
		pl.ShaderModule.Release()
		pl.ShaderModule = nil
	}
}
