// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softrast

import (
	"cogentcore.org/core/math32"

	"github.com/shadeworks/shade"
)

// Fragment3D is the vertex stage output of the 3D program: what the
// rasterizer interpolates on its way to FragmentMain3D. ClipPos and
// Color interpolate linearly; UV interpolates linearly; TexIndex is
// flat, taken from the triangle's first vertex.
type Fragment3D struct {
	ClipPos  math32.Vector4
	TexIndex uint32
	UV       math32.Vector2
	Color    shade.RGBA
}

// Fragment2D is the vertex stage output of the 2D program.
type Fragment2D struct {
	ClipPos math32.Vector4
	UV      math32.Vector2
	Color   shade.RGBA
}

// VertexMain3D runs the 3D vertex stage on one vertex: the camera's
// view-projection transform plus the six-direction lighting model.
// The vertex color is the lighting intensity in each of r, g, b with
// alpha 1, unclamped above.
func VertexMain3D(cam *shade.CameraUniform, v shade.Vertex3D) Fragment3D {
	return Fragment3D{
		ClipPos:  cam.Project(v.Pos),
		TexIndex: v.TexIndex,
		UV:       v.UV,
		Color:    shade.LightColor(v.Normal),
	}
}

// VertexMain2D runs the 2D vertex stage on one vertex: the fixed
// screen-to-clip transform, passing UV and tint through. TexIndex is
// dropped, as the 2D program never reads it.
func VertexMain2D(v shade.Vertex2D) Fragment2D {
	return Fragment2D{
		ClipPos: shade.ScreenToClip(v.Pos),
		UV:      v.UV,
		Color:   v.Color,
	}
}
