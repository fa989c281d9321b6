// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders embeds the WGSL source for the two shading programs.
package shaders

import _ "embed"

// Main3D is the opaque-geometry program: camera transform and
// six-direction lighting in vs_main, texture-array sampling times
// lighting color in fs_main.
//
//go:embed main3d.wgsl
var Main3D string

// Main2D is the overlay program: [0,1] top-left-origin screen space to
// clip space in vs_main, tinted single-texture sampling in fs_main.
//
//go:embed main2d.wgsl
var Main2D string
