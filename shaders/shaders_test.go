// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain3DSignature(t *testing.T) {
	assert.Contains(t, Main3D, "fn vs_main")
	assert.Contains(t, Main3D, "fn fs_main")

	// Group 0 is the texture array and sampler; group 1 the camera.
	assert.Contains(t, Main3D, "@group(0) @binding(0) var texture_array: texture_2d_array<f32>;")
	assert.Contains(t, Main3D, "@group(0) @binding(1) var texture_sampler: sampler;")
	assert.Contains(t, Main3D, "@group(1) @binding(0) var<uniform> camera: Camera;")

	// tex_index must be flat-interpolated; a plain u32 varying would
	// not even validate, but make the intent explicit here.
	assert.Contains(t, Main3D, "@interpolate(flat) tex_index: u32")
}

func TestMain3DUniformBlock(t *testing.T) {
	// The Camera block must stay at 80 bytes: mat4 + aspect + three
	// scalar pads. A vec3 pad instead would align the struct to 96.
	assert.Contains(t, Main3D, "view_projection: mat4x4<f32>")
	assert.Contains(t, Main3D, "aspect: f32")
	for _, pad := range []string{"_pad0: f32", "_pad1: f32", "_pad2: f32"} {
		assert.Contains(t, Main3D, pad)
	}
	assert.NotContains(t, Main3D, "vec3<f32>,\n    aspect")
}

func TestMain3DLightTable(t *testing.T) {
	// The brightness table mirrors shade.LightDirs; these values are
	// the shading model.
	assert.Contains(t, Main3D, "array<f32, 6>(0.8, 1.0, 0.7, 0.6, 0.4, 0.75)")
	assert.Contains(t, Main3D, "max(dot(in.normal, LIGHT_DIRECTIONS[i]) * LIGHT_BRIGHTNESS[i], 0.0)")
}

func TestMain2DSignature(t *testing.T) {
	assert.Contains(t, Main2D, "fn vs_main")
	assert.Contains(t, Main2D, "fn fs_main")
	assert.Contains(t, Main2D, "@group(0) @binding(0) var color_texture: texture_2d<f32>;")
	assert.Contains(t, Main2D, "@group(0) @binding(1) var texture_sampler: sampler;")

	// Screen-space transform, y flipped, no camera.
	assert.Contains(t, Main2D, "in.pos.x * 2.0 - 1.0")
	assert.Contains(t, Main2D, "1.0 - in.pos.y * 2.0")
	assert.NotContains(t, Main2D, "camera")

	// tex_index stays in the vertex layout even though the program
	// never reads it.
	assert.Contains(t, Main2D, "@location(2) tex_index: u32")
	assert.Equal(t, 1, strings.Count(Main2D, "tex_index: u32"))
}
