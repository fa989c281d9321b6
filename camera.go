// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import (
	"unsafe"

	"cogentcore.org/core/math32"
)

// CameraUniform is the camera state shared by every invocation of the
// 3D pipeline for a draw call. It is externally owned and overwritten
// once per frame. The memory layout is contractual: a column-major
// 4x4 view-projection matrix at offset 0, the aspect ratio at offset
// 64, then 12 bytes of padding so the block ends on the 16-byte
// uniform alignment boundary. The padding carries no meaning but its
// bytes are part of the 80-byte wire format.
type CameraUniform struct {
	// ViewProjection transforms object-space positions to clip space:
	// clip = ViewProjection * (pos, 1).
	ViewProjection math32.Matrix4

	// Aspect is the render target width / height ratio.
	Aspect float32

	pad [3]float32
}

// CameraUniformSize is the uniform block size in bytes.
const CameraUniformSize = 80

// SetViewProjection composes projection * view into the uniform's
// matrix.
func (cu *CameraUniform) SetViewProjection(view, projection *math32.Matrix4) {
	cu.ViewProjection.MulMatrices(projection, view)
}

// Project runs the 3D vertex stage's camera transform: clip-space
// position of an object-space point, with no perspective divide (that
// is the rasterizer's job downstream). Pure function; a malformed
// matrix produces garbage, not an error.
func (cu *CameraUniform) Project(pos math32.Vector3) math32.Vector4 {
	return math32.Vec4(pos.X, pos.Y, pos.Z, 1).MulMatrix4(&cu.ViewProjection)
}

// Bytes returns the raw 80-byte uniform block, padding included, for
// queue upload.
func (cu *CameraUniform) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(cu)), CameraUniformSize)
}
