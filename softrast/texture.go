// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrast

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"

	"github.com/shadeworks/shade"
)

// Texture is a CPU texture: float RGBA texels addressed by normalized
// UV through a Sampler.
type Texture struct {
	Width  int
	Height int

	// Pix holds texels row-major, Width*Height of them.
	Pix []shade.RGBA
}

// NewTexture returns a texture of the given size with all texels zero.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pix:    make([]shade.RGBA, width*height),
	}
}

// SolidTexture returns a 1x1 texture of the given color, the identity
// under UV addressing.
func SolidTexture(color shade.RGBA) *Texture {
	return &Texture{Width: 1, Height: 1, Pix: []shade.RGBA{color}}
}

// FromImage converts an image to float texels, alpha unpremultiplied
// by image.RGBA convention left as-is.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.Pix[y*t.Width+x] = shade.RGBA{
				R: float32(r) / 0xffff,
				G: float32(g) / 0xffff,
				B: float32(bl) / 0xffff,
				A: float32(a) / 0xffff,
			}
		}
	}
	return t
}

// Texel returns the texel at integer coordinates, which must be in
// range.
func (t *Texture) Texel(x, y int) shade.RGBA {
	return t.Pix[y*t.Width+x]
}

// SetTexel sets the texel at integer coordinates.
func (t *Texture) SetTexel(x, y int, c shade.RGBA) {
	t.Pix[y*t.Width+x] = c
}

// Filter selects how a Sampler reads between texel centers.
type Filter int32

const (
	// Nearest snaps to the nearest texel.
	Nearest Filter = iota

	// Bilinear blends the four surrounding texels.
	Bilinear
)

// AddressMode selects how a Sampler treats UVs outside [0,1].
type AddressMode int32

const (
	// Repeat wraps coordinates, tiling the texture.
	Repeat AddressMode = iota

	// ClampToEdge pins coordinates to the border texel.
	ClampToEdge
)

// Sampler reads a Texture at normalized UV coordinates. The zero value
// is nearest filtering with repeat addressing.
type Sampler struct {
	Filter  Filter
	Address AddressMode
}

// DefaultSampler mirrors the sampler the GPU textures are created
// with: linear filtering, clamp-to-edge addressing.
var DefaultSampler = Sampler{Filter: Bilinear, Address: ClampToEdge}

func (s Sampler) wrap(i, n int) int {
	switch s.Address {
	case ClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	default:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}

// Sample reads the texture at (u, v), both normalized with v growing
// downward, matching textureSample.
func (s Sampler) Sample(t *Texture, u, v float32) shade.RGBA {
	x := u*float32(t.Width) - 0.5
	y := v*float32(t.Height) - 0.5
	if s.Filter == Nearest {
		xi := s.wrap(int(math32.Floor(x+0.5)), t.Width)
		yi := s.wrap(int(math32.Floor(y+0.5)), t.Height)
		return t.Texel(xi, yi)
	}
	x0 := int(math32.Floor(x))
	y0 := int(math32.Floor(y))
	fx := x - float32(x0)
	fy := y - float32(y0)
	c00 := t.Texel(s.wrap(x0, t.Width), s.wrap(y0, t.Height))
	c10 := t.Texel(s.wrap(x0+1, t.Width), s.wrap(y0, t.Height))
	c01 := t.Texel(s.wrap(x0, t.Width), s.wrap(y0+1, t.Height))
	c11 := t.Texel(s.wrap(x0+1, t.Width), s.wrap(y0+1, t.Height))
	top := c00.MulScalar(1 - fx).Add(c10.MulScalar(fx))
	bot := c01.MulScalar(1 - fx).Add(c11.MulScalar(fx))
	return top.MulScalar(1 - fy).Add(bot.MulScalar(fy))
}

// TextureArray is a CPU texture array: equal-sized layers selected by
// TexIndex.
type TextureArray struct {
	Layers []*Texture
}

// NewTextureArray wraps layers, which must all share one size.
func NewTextureArray(layers ...*Texture) (*TextureArray, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("softrast: texture array needs at least one layer")
	}
	w, h := layers[0].Width, layers[0].Height
	for i, l := range layers {
		if l.Width != w || l.Height != h {
			return nil, fmt.Errorf("softrast: texture array layer %d is %dx%d, want %dx%d",
				i, l.Width, l.Height, w, h)
		}
	}
	return &TextureArray{Layers: layers}, nil
}

// Layer returns the layer for a TexIndex. Out-of-range indices clamp
// to the last layer, as textureSample does for a texture_2d_array.
func (ta *TextureArray) Layer(index uint32) *Texture {
	if int(index) >= len(ta.Layers) {
		return ta.Layers[len(ta.Layers)-1]
	}
	return ta.Layers[index]
}
