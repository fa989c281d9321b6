// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrast

import "github.com/shadeworks/shade"

// FragmentMain3D runs the 3D fragment stage on one interpolated
// fragment: sample the array layer named by the flat tex_index, then
// multiply by the interpolated lighting color. No clamping, no alpha
// handling; blending belongs to the pipeline, not the program.
func FragmentMain3D(f Fragment3D, tex *TextureArray, smp Sampler) shade.RGBA {
	return smp.Sample(tex.Layer(f.TexIndex), f.UV.X, f.UV.Y).Mul(f.Color)
}

// FragmentMain2D runs the 2D fragment stage: sample the single
// texture, multiply by the interpolated tint.
func FragmentMain2D(f Fragment2D, tex *Texture, smp Sampler) shade.RGBA {
	return smp.Sample(tex, f.UV.X, f.UV.Y).Mul(f.Color)
}
