// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import (
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex3D is one vertex of opaque 3D geometry. Fields are laid out
// exactly as the vertex buffer expects them (36 bytes, no padding):
// attribute locations 0..3 in field order.
type Vertex3D struct {
	// Pos is the object/world-space position.
	Pos math32.Vector3

	// UV is the texture coordinate.
	UV math32.Vector2

	// TexIndex selects the texture array layer. It must be constant
	// across a triangle (flat interpolation) and a valid layer index
	// for the bound array; an out-of-range value is the caller's
	// contract violation, resolved by the backend.
	TexIndex uint32

	// Normal is the lighting normal, assumed unit length. It carries
	// no surface detail; only LightIntensity reads it.
	Normal math32.Vector3
}

// Vertex2D is one vertex of 2D overlay geometry (36 bytes, no
// padding). Pos is in a top-left-origin [0,1] space, not clip space.
type Vertex2D struct {
	Pos math32.Vector2
	UV  math32.Vector2

	// TexIndex is carried in the buffer layout but not read by the
	// current 2D program. Kept as-is; see the layout contract.
	TexIndex uint32

	// Color is a multiplicative tint, interpolated across the
	// triangle.
	Color RGBA
}

// Vertex3DFormats lists the 3D vertex attribute formats in shader
// location order. Offsets and the buffer stride derive from this.
var Vertex3DFormats = []wgpu.VertexFormat{
	wgpu.VertexFormatFloat32x3,
	wgpu.VertexFormatFloat32x2,
	wgpu.VertexFormatUint32,
	wgpu.VertexFormatFloat32x3,
}

// Vertex2DFormats lists the 2D vertex attribute formats in shader
// location order.
var Vertex2DFormats = []wgpu.VertexFormat{
	wgpu.VertexFormatFloat32x2,
	wgpu.VertexFormatFloat32x2,
	wgpu.VertexFormatUint32,
	wgpu.VertexFormatFloat32x4,
}

// vertexFormatSize returns the byte size of the formats used by the
// two vertex layouts.
func vertexFormatSize(f wgpu.VertexFormat) uint64 {
	switch f {
	case wgpu.VertexFormatUint32, wgpu.VertexFormatFloat32:
		return 4
	case wgpu.VertexFormatFloat32x2:
		return 8
	case wgpu.VertexFormatFloat32x3:
		return 12
	case wgpu.VertexFormatFloat32x4:
		return 16
	}
	return 0
}

// VertexLayout derives a vertex buffer layout from a format list,
// packing attributes tightly and assigning consecutive shader
// locations from 0.
func VertexLayout(formats []wgpu.VertexFormat) wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, len(formats))
	var offset uint64
	for i, f := range formats {
		attrs[i] = wgpu.VertexAttribute{
			Format:         f,
			Offset:         offset,
			ShaderLocation: uint32(i),
		}
		offset += vertexFormatSize(f)
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// ScreenToClip runs the 2D vertex stage's transform: a top-left-origin
// [0,1] position maps to clip space with the y axis flipped, z = 0,
// w = 1. No camera uniform is involved.
func ScreenToClip(pos math32.Vector2) math32.Vector4 {
	return math32.Vec4(pos.X*2-1, 1-pos.Y*2, 0, 1)
}

// QuadIndices is the two-triangle index pattern for a quad's four
// corners.
var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}

// FillScreen returns the four corners of the whole 2D input space with
// the given tint, wound to match QuadIndices.
func FillScreen(color RGBA) [4]Vertex2D {
	return [4]Vertex2D{
		{Pos: math32.Vec2(0, 0), UV: math32.Vec2(0, 0), Color: color},
		{Pos: math32.Vec2(0, 1), UV: math32.Vec2(0, 1), Color: color},
		{Pos: math32.Vec2(1, 1), UV: math32.Vec2(1, 1), Color: color},
		{Pos: math32.Vec2(1, 0), UV: math32.Vec2(1, 0), Color: color},
	}
}

// sliceBytes reinterprets a slice of fixed-layout values as its raw
// bytes for buffer upload.
func sliceBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	n := len(s) * int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n)
}

// Vertex3DBytes returns the packed vertex buffer contents.
func Vertex3DBytes(verts []Vertex3D) []byte { return sliceBytes(verts) }

// Vertex2DBytes returns the packed vertex buffer contents.
func Vertex2DBytes(verts []Vertex2D) []byte { return sliceBytes(verts) }
