// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/cogentcore/webgpu/wgpu"
)

// Texture bundles a GPU texture, its view, and a sampler, ready to
// bind as group 0 of either pipeline. Layers is 1 for a plain 2D
// texture and the layer count for an array.
type Texture struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView
	Sampler *wgpu.Sampler
	Layers  int
}

// NewTexture uploads one image as a single 2D texture for the 2D
// pipeline, with clamp-to-edge addressing and linear filtering.
func NewTexture(device *wgpu.Device, queue *wgpu.Queue, img image.Image) (*Texture, error) {
	return newTexture(device, queue, "texture2d", []image.Image{img}, wgpu.TextureViewDimension2D)
}

// NewTextureArray uploads same-sized images as the layers of a 2D
// texture array for the 3D pipeline. Layer i of the array is
// layers[i]; TexIndex values select among them at sample time.
func NewTextureArray(device *wgpu.Device, queue *wgpu.Queue, layers []image.Image) (*Texture, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("shade: texture array needs at least one layer")
	}
	return newTexture(device, queue, "texturearray", layers, wgpu.TextureViewDimension2DArray)
}

func newTexture(device *wgpu.Device, queue *wgpu.Queue, label string, layers []image.Image, dim wgpu.TextureViewDimension) (*Texture, error) {
	bounds := layers[0].Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	for i, img := range layers {
		if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			return nil, fmt.Errorf("shade: texture %q: layer %d is %dx%d, want %dx%d",
				label, i, img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		}
	}

	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: uint32(len(layers)),
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("shade: texture %q: %w", label, err)
	}

	for i, img := range layers {
		rgba, ok := img.(*image.RGBA)
		if !ok || rgba.Bounds() != bounds {
			rgba = image.NewRGBA(image.Rectangle{Max: image.Point{w, h}})
			draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
		}
		queue.WriteTexture(
			&wgpu.ImageCopyTexture{
				Texture:  tex,
				MipLevel: 0,
				Origin:   wgpu.Origin3D{Z: uint32(i)},
				Aspect:   wgpu.TextureAspectAll,
			},
			rgba.Pix,
			&wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(rgba.Stride),
				RowsPerImage: uint32(h),
			},
			&wgpu.Extent3D{
				Width:              uint32(w),
				Height:             uint32(h),
				DepthOrArrayLayers: 1,
			},
		)
	}

	view, err := tex.CreateView(&wgpu.TextureViewDescriptor{
		Label:           label,
		Format:          wgpu.TextureFormatRGBA8UnormSrgb,
		Dimension:       dim,
		MipLevelCount:   1,
		ArrayLayerCount: uint32(len(layers)),
		Aspect:          wgpu.TextureAspectAll,
	})
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("shade: texture %q: view: %w", label, err)
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, fmt.Errorf("shade: texture %q: sampler: %w", label, err)
	}

	return &Texture{Texture: tex, View: view, Sampler: sampler, Layers: len(layers)}, nil
}

// BindGroupEntries returns the texture and sampler entries for group 0
// of either pipeline.
func (t *Texture) BindGroupEntries() []wgpu.BindGroupEntry {
	return []wgpu.BindGroupEntry{
		{Binding: 0, TextureView: t.View},
		{Binding: 1, Sampler: t.Sampler},
	}
}

// Release frees the texture's GPU objects.
func (t *Texture) Release() {
	if t.Sampler != nil {
		t.Sampler.Release()
		t.Sampler = nil
	}
	if t.View != nil {
		t.View.Release()
		t.View = nil
	}
	if t.Texture != nil {
		t.Texture.Release()
		t.Texture = nil
	}
}
