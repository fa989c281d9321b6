// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade is the shading core of a real-time WebGPU renderer:
// two small shader programs and the Go-side state they bind.
//
// The 3D pipeline lights opaque geometry per vertex with a fixed
// six-direction environment approximation and samples a texture array
// per fragment, selecting the layer with a flat (non-interpolated)
// per-vertex index. The 2D pipeline maps overlay geometry from a
// top-left-origin [0,1] screen space directly to clip space and
// samples a single texture multiplied by a per-vertex tint.
//
// The pipelines are independent; the caller selects one per draw call.
// Everything feeding them (meshes, texture atlases, camera matrices,
// render passes, windowing) is an external collaborator. The package
// only fixes the binding layout, the vertex attribute layout, and the
// shading math itself.
//
// [github.com/shadeworks/shade/softrast] holds a CPU implementation of
// the same stages, kept behaviorally identical to the WGSL and used to
// test it.
package shade
