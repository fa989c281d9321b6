// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import "cogentcore.org/core/math32"

// LightDir pairs one of the six axis-aligned environment directions
// with its fixed brightness weight.
type LightDir struct {
	Direction  math32.Vector3
	Brightness float32
}

// LightDirs is the environment light table: six axis-aligned
// directions, each with a fixed brightness. +Y is brightest (dominant
// overhead light), -Y dimmest. The table is a compile-time constant of
// the shading model; the WGSL in [shaders.Main3D] carries the same
// values and the two must not diverge.
var LightDirs = [6]LightDir{
	{math32.Vec3(1, 0, 0), 0.8},
	{math32.Vec3(0, 1, 0), 1.0},
	{math32.Vec3(0, 0, 1), 0.7},
	{math32.Vec3(-1, 0, 0), 0.6},
	{math32.Vec3(0, -1, 0), 0.4},
	{math32.Vec3(0, 0, -1), 0.75},
}

// LightIntensity sums the six directional contributions
// max(dot(normal, dir) * brightness, 0) for a vertex normal.
// Normals are assumed unit length; a non-unit normal biases the
// result proportionally and is not corrected here. The zero normal
// yields 0 (fully black).
func LightIntensity(normal math32.Vector3) float32 {
	var intensity float32
	for _, ld := range LightDirs {
		intensity += max(normal.Dot(ld.Direction)*ld.Brightness, 0)
	}
	return intensity
}

// LightColor is the 3D vertex stage's lighting output: a grayscale
// multiplier (i, i, i, 1). Hue comes entirely from the texture.
func LightColor(normal math32.Vector3) RGBA {
	i := LightIntensity(normal)
	return RGBA{i, i, i, 1}
}
