// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import "cogentcore.org/core/math32"

// RGBA is a float color as the shading stages see it: channels are
// [0,1] by convention but never clamped anywhere in the core, so
// out-of-range values propagate to the output for the blend state to
// deal with.
type RGBA struct {
	R, G, B, A float32
}

// White is the identity tint.
var White = RGBA{1, 1, 1, 1}

// Mul multiplies component-wise, the composition used by both fragment
// stages.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// MulScalar scales all four channels uniformly.
func (c RGBA) MulScalar(s float32) RGBA {
	return RGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Add adds component-wise.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Vector4 returns the color as a math32 vector.
func (c RGBA) Vector4() math32.Vector4 {
	return math32.Vec4(c.R, c.G, c.B, c.A)
}

// RGBAFromVector4 converts a math32 vector to a color.
func RGBAFromVector4(v math32.Vector4) RGBA {
	return RGBA{v.X, v.Y, v.Z, v.W}
}
