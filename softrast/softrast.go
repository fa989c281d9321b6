// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softrast is a CPU rendition of the two shading programs in
// package shade. VertexMain3D, FragmentMain3D, VertexMain2D, and
// FragmentMain2D compute, per vertex or fragment, exactly what the
// WGSL entry points compute, and Framebuffer rasterizes with them.
//
// It exists to make the shading semantics testable without a GPU:
// lighting, layer selection, tinting, and the 2D transform can all be
// asserted pixel-by-pixel. It is not a performance path.
package softrast
