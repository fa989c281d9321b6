// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrast

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadeworks/shade"
)

// identityCamera leaves positions as clip coordinates: w = 1 for every
// vertex.
func identityCamera() *shade.CameraUniform {
	return &shade.CameraUniform{ViewProjection: math32.Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// clipQuad3D is a full-clip-space quad at depth z with one normal and
// texture layer, wound for QuadIndices.
func clipQuad3D(z float32, normal math32.Vector3, texIndex uint32) []shade.Vertex3D {
	corners := []math32.Vector2{
		math32.Vec2(-1, 1),  // top left
		math32.Vec2(-1, -1), // bottom left
		math32.Vec2(1, -1),  // bottom right
		math32.Vec2(1, 1),   // top right
	}
	verts := make([]shade.Vertex3D, 4)
	for i, c := range corners {
		verts[i] = shade.Vertex3D{
			Pos:      math32.Vec3(c.X, c.Y, z),
			UV:       math32.Vec2(0.5, 0.5),
			TexIndex: texIndex,
			Normal:   normal,
		}
	}
	return verts
}

func TestVertexMain3D(t *testing.T) {
	cam := identityCamera()
	f := VertexMain3D(cam, shade.Vertex3D{
		Pos:      math32.Vec3(0.5, -0.5, 0.25),
		UV:       math32.Vec2(0.1, 0.9),
		TexIndex: 3,
		Normal:   math32.Vec3(0, 1, 0),
	})
	assert.Equal(t, math32.Vec4(0.5, -0.5, 0.25, 1), f.ClipPos)
	assert.Equal(t, math32.Vec2(0.1, 0.9), f.UV)
	assert.Equal(t, uint32(3), f.TexIndex)
	assert.Equal(t, shade.RGBA{R: 1, G: 1, B: 1, A: 1}, f.Color)
}

func TestVertexMain2D(t *testing.T) {
	f := VertexMain2D(shade.Vertex2D{
		Pos:      math32.Vec2(0.5, 0.5),
		UV:       math32.Vec2(0.25, 0.75),
		TexIndex: 9, // carried in the layout, dropped by the program
		Color:    shade.RGBA{R: 1, G: 0, B: 0, A: 1},
	})
	assert.Equal(t, math32.Vec4(0, 0, 0, 1), f.ClipPos)
	assert.Equal(t, math32.Vec2(0.25, 0.75), f.UV)
	assert.Equal(t, shade.RGBA{R: 1, G: 0, B: 0, A: 1}, f.Color)
}

func TestDraw3DLayerSelection(t *testing.T) {
	ta, err := NewTextureArray(SolidTexture(red), SolidTexture(green), SolidTexture(blue))
	require.NoError(t, err)

	fb := NewFramebuffer(4, 4)
	fb.Draw3D(identityCamera(), clipQuad3D(0, math32.Vec3(0, 1, 0), 2), shade.QuadIndices, ta, DefaultSampler)

	// +Y normal lights at exactly 1.0, so every pixel is layer 2's
	// color untouched.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, blue, fb.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestDraw3DLighting(t *testing.T) {
	ta, err := NewTextureArray(SolidTexture(shade.White))
	require.NoError(t, err)

	// -Y normal lights at 0.4: white texture scaled to 0.4 gray,
	// alpha stays 1.
	fb := NewFramebuffer(2, 2)
	fb.Draw3D(identityCamera(), clipQuad3D(0, math32.Vec3(0, -1, 0), 0), shade.QuadIndices, ta, DefaultSampler)
	c := fb.At(1, 1)
	assert.InDelta(t, 0.4, c.R, 1e-6)
	assert.InDelta(t, 0.4, c.G, 1e-6)
	assert.InDelta(t, 0.4, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestDraw3DZeroNormalIsBlack(t *testing.T) {
	ta, err := NewTextureArray(SolidTexture(shade.White))
	require.NoError(t, err)

	fb := NewFramebuffer(2, 2)
	fb.Draw3D(identityCamera(), clipQuad3D(0, math32.Vector3{}, 0), shade.QuadIndices, ta, DefaultSampler)
	assert.Equal(t, shade.RGBA{R: 0, G: 0, B: 0, A: 1}, fb.At(0, 0))
	assert.Equal(t, shade.RGBA{R: 0, G: 0, B: 0, A: 1}, fb.At(1, 1))
}

func TestDraw3DFlatTexIndex(t *testing.T) {
	// tex_index comes flat from each triangle's first vertex: the two
	// triangles of one quad can name different layers, and no pixel
	// ever blends between layers.
	ta, err := NewTextureArray(SolidTexture(red), SolidTexture(green))
	require.NoError(t, err)

	verts := clipQuad3D(0, math32.Vec3(0, 1, 0), 7)
	verts[0].TexIndex = 0 // first vertex of triangle 0,1,2
	verts[2].TexIndex = 1 // first vertex of triangle 2,3,0

	fb := NewFramebuffer(4, 4)
	fb.Draw3D(identityCamera(), verts, shade.QuadIndices, ta, DefaultSampler)

	// Strictly below the top-left/bottom-right diagonal is the first
	// triangle, strictly above the second.
	assert.Equal(t, red, fb.At(0, 3))
	assert.Equal(t, green, fb.At(3, 0))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := fb.At(x, y)
			assert.Contains(t, []shade.RGBA{red, green}, c, "pixel %d,%d blended layers", x, y)
		}
	}
}

func TestDraw3DDepthTest(t *testing.T) {
	ta, err := NewTextureArray(SolidTexture(red), SolidTexture(green))
	require.NoError(t, err)
	normal := math32.Vec3(0, 1, 0)

	fb := NewFramebuffer(2, 2)
	// Far red quad, then near green: green wins.
	fb.Draw3D(identityCamera(), clipQuad3D(0.8, normal, 0), shade.QuadIndices, ta, DefaultSampler)
	fb.Draw3D(identityCamera(), clipQuad3D(0.2, normal, 1), shade.QuadIndices, ta, DefaultSampler)
	assert.Equal(t, green, fb.At(0, 0))

	// A later far red quad fails the less-equal test.
	fb.Draw3D(identityCamera(), clipQuad3D(0.8, normal, 0), shade.QuadIndices, ta, DefaultSampler)
	assert.Equal(t, green, fb.At(1, 1))

	// Equal depth passes less-equal: drawing red at the same depth
	// overwrites.
	fb.Draw3D(identityCamera(), clipQuad3D(0.2, normal, 0), shade.QuadIndices, ta, DefaultSampler)
	assert.Equal(t, red, fb.At(1, 1))
}

func TestDraw3DDropsNonPositiveW(t *testing.T) {
	ta, err := NewTextureArray(SolidTexture(red))
	require.NoError(t, err)

	// A view-projection with w = z puts any z <= 0 vertex at w <= 0;
	// such triangles are dropped, not clipped.
	var cam shade.CameraUniform
	cam.ViewProjection = math32.Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 1,
		0, 0, 0, 0,
	}

	fb := NewFramebuffer(2, 2)
	clear := fb.At(0, 0)
	fb.Draw3D(&cam, clipQuad3D(0, math32.Vec3(0, 1, 0), 0), shade.QuadIndices, ta, DefaultSampler)
	assert.Equal(t, clear, fb.At(0, 0))
	assert.Equal(t, clear, fb.At(1, 1))
}

func TestDraw2DFillScreen(t *testing.T) {
	quad := shade.FillScreen(shade.White)
	fb := NewFramebuffer(3, 3)
	fb.Draw2D(quad[:], shade.QuadIndices, SolidTexture(green), DefaultSampler)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, green, fb.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestDraw2DTint(t *testing.T) {
	// The fragment stage multiplies sample by tint component-wise.
	quad := shade.FillScreen(shade.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})
	fb := NewFramebuffer(2, 2)
	fb.Draw2D(quad[:], shade.QuadIndices, SolidTexture(shade.RGBA{R: 1, G: 0.5, B: 0, A: 1}), DefaultSampler)
	c := fb.At(0, 0)
	assert.InDelta(t, 0.5, c.R, 1e-6)
	assert.InDelta(t, 0.25, c.G, 1e-6)
	assert.InDelta(t, 0, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestDraw2DPartialCoverage(t *testing.T) {
	// A quad over the left half of the input space touches only the
	// left half of the framebuffer.
	verts := []shade.Vertex2D{
		{Pos: math32.Vec2(0, 0), Color: shade.White},
		{Pos: math32.Vec2(0, 1), Color: shade.White},
		{Pos: math32.Vec2(0.5, 1), Color: shade.White},
		{Pos: math32.Vec2(0.5, 0), Color: shade.White},
	}
	fb := NewFramebuffer(4, 2)
	clear := fb.At(0, 0)
	fb.Draw2D(verts, shade.QuadIndices, SolidTexture(red), DefaultSampler)
	for y := 0; y < 2; y++ {
		assert.Equal(t, red, fb.At(0, y))
		assert.Equal(t, red, fb.At(1, y))
		assert.Equal(t, clear, fb.At(2, y))
		assert.Equal(t, clear, fb.At(3, y))
	}
}

func TestFramebufferImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Pixels[0] = shade.RGBA{R: 1, G: 0.5, B: 0, A: 1}
	fb.Pixels[1] = shade.RGBA{R: 2, G: -1, B: 0.25, A: 1} // out of range clamps only here

	img := fb.Image()
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.InDelta(t, 0.5, float64(g)/0xffff, 0.01)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	r, g, _, _ = img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
}
