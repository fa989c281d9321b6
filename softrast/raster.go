// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrast

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/shadeworks/shade"
)

// Framebuffer is the render target of the CPU path: float RGBA pixels
// plus a depth plane for 3D draws.
type Framebuffer struct {
	Width  int
	Height int

	// Pixels holds the color plane row-major, top row first.
	Pixels []shade.RGBA

	// depth is the Depth32Float analogue, compared less-equal.
	depth []float32
}

// NewFramebuffer returns a framebuffer cleared to transparent black
// with depth at the far plane.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]shade.RGBA, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear(shade.RGBA{})
	return fb
}

// Clear fills the color plane with one color and resets depth to the
// far plane.
func (fb *Framebuffer) Clear(c shade.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
	for i := range fb.depth {
		fb.depth[i] = 1
	}
}

// At returns the pixel at (x, y), origin top-left.
func (fb *Framebuffer) At(x, y int) shade.RGBA {
	return fb.Pixels[y*fb.Width+x]
}

// Image converts the float color plane to an 8-bit image, clamping
// each channel to [0, 1]. This is the only place values clamp; the
// shading math itself never does.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(c.R),
				G: channelByte(c.G),
				B: channelByte(c.B),
				A: channelByte(c.A),
			})
		}
	}
	return img
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Draw3D rasterizes an indexed 3D mesh through the 3D program with
// depth testing. Triangles with any vertex at w <= 0 are dropped
// rather than clipped. Attributes interpolate linearly in screen
// space; tex_index is flat from each triangle's first vertex.
func (fb *Framebuffer) Draw3D(cam *shade.CameraUniform, verts []shade.Vertex3D, indices []uint32, tex *TextureArray, smp Sampler) {
	for i := 0; i+2 < len(indices); i += 3 {
		f0 := VertexMain3D(cam, verts[indices[i]])
		f1 := VertexMain3D(cam, verts[indices[i+1]])
		f2 := VertexMain3D(cam, verts[indices[i+2]])
		if f0.ClipPos.W <= 0 || f1.ClipPos.W <= 0 || f2.ClipPos.W <= 0 {
			continue
		}
		fb.fillTriangle(
			triVertex{fb.toScreen(f0.ClipPos), f0.UV, f0.Color},
			triVertex{fb.toScreen(f1.ClipPos), f1.UV, f1.Color},
			triVertex{fb.toScreen(f2.ClipPos), f2.UV, f2.Color},
			true,
			func(f Fragment3D) shade.RGBA { return FragmentMain3D(f, tex, smp) },
			f0.TexIndex,
		)
	}
}

// Draw2D rasterizes indexed overlay geometry through the 2D program.
// No depth test; later triangles overwrite earlier ones.
func (fb *Framebuffer) Draw2D(verts []shade.Vertex2D, indices []uint32, tex *Texture, smp Sampler) {
	for i := 0; i+2 < len(indices); i += 3 {
		f0 := VertexMain2D(verts[indices[i]])
		f1 := VertexMain2D(verts[indices[i+1]])
		f2 := VertexMain2D(verts[indices[i+2]])
		fb.fillTriangle(
			triVertex{fb.toScreen(f0.ClipPos), f0.UV, f0.Color},
			triVertex{fb.toScreen(f1.ClipPos), f1.UV, f1.Color},
			triVertex{fb.toScreen(f2.ClipPos), f2.UV, f2.Color},
			false,
			func(f Fragment3D) shade.RGBA {
				return FragmentMain2D(Fragment2D{UV: f.UV, Color: f.Color}, tex, smp)
			},
			0,
		)
	}
}

// triVertex is a screen-space vertex ready for rasterization: pixel
// x, y, depth z, and the interpolated attributes.
type triVertex struct {
	Pos   math32.Vector3
	UV    math32.Vector2
	Color shade.RGBA
}

// toScreen divides by w and maps NDC to pixel coordinates, keeping
// NDC z as the depth value.
func (fb *Framebuffer) toScreen(clip math32.Vector4) math32.Vector3 {
	ndc := clip.MulScalar(1 / clip.W)
	return math32.Vec3(
		(ndc.X+1)*0.5*float32(fb.Width),
		(1-ndc.Y)*0.5*float32(fb.Height),
		ndc.Z,
	)
}

func edge(a, b math32.Vector3, px, py float32) float32 {
	return (px-a.X)*(b.Y-a.Y) - (py-a.Y)*(b.X-a.X)
}

// fillTriangle rasterizes one screen-space triangle, sampling at pixel
// centers with barycentric interpolation. Both windings fill. texIndex
// is the flat attribute from the triangle's first vertex.
func (fb *Framebuffer) fillTriangle(v0, v1, v2 triVertex, depthTest bool, frag func(Fragment3D) shade.RGBA, texIndex uint32) {
	area := edge(v0.Pos, v1.Pos, v2.Pos.X, v2.Pos.Y)
	if area == 0 {
		return
	}

	minX := int(math32.Floor(math32.Min(v0.Pos.X, math32.Min(v1.Pos.X, v2.Pos.X))))
	maxX := int(math32.Ceil(math32.Max(v0.Pos.X, math32.Max(v1.Pos.X, v2.Pos.X))))
	minY := int(math32.Floor(math32.Min(v0.Pos.Y, math32.Min(v1.Pos.Y, v2.Pos.Y))))
	maxY := int(math32.Ceil(math32.Max(v0.Pos.Y, math32.Max(v1.Pos.Y, v2.Pos.Y))))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width)
	maxY = min(maxY, fb.Height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5
			w0 := edge(v1.Pos, v2.Pos, px, py) / area
			w1 := edge(v2.Pos, v0.Pos, px, py) / area
			w2 := edge(v0.Pos, v1.Pos, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v0.Pos.Z + w1*v1.Pos.Z + w2*v2.Pos.Z
			idx := y*fb.Width + x
			if depthTest {
				if z > fb.depth[idx] {
					continue
				}
				fb.depth[idx] = z
			}
			f := Fragment3D{
				TexIndex: texIndex,
				UV: math32.Vec2(
					w0*v0.UV.X+w1*v1.UV.X+w2*v2.UV.X,
					w0*v0.UV.Y+w1*v1.UV.Y+w2*v2.UV.Y,
				),
				Color: v0.Color.MulScalar(w0).Add(v1.Color.MulScalar(w1)).Add(v2.Color.MulScalar(w2)),
			}
			fb.Pixels[idx] = frag(f)
		}
	}
}
