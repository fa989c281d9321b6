// Copyright (c) 2026, Shadeworks Contributors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Buffer pairs a GPU buffer with the number of elements it holds.
type Buffer struct {
	Buffer *wgpu.Buffer

	// N is the element count (vertices or indices).
	N int
}

func newBuffer(device *wgpu.Device, queue *wgpu.Queue, label string, data []byte, usage wgpu.BufferUsage, n int) (*Buffer, error) {
	size := uint64(len(data))
	if size == 0 {
		size = 4 // zero-size buffers are invalid; keep a stub allocation
	}
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("shade: buffer %q: %w", label, err)
	}
	if len(data) > 0 {
		queue.WriteBuffer(buf, 0, data)
	}
	return &Buffer{Buffer: buf, N: n}, nil
}

// Write overwrites the buffer contents from offset 0.
func (b *Buffer) Write(queue *wgpu.Queue, data []byte) {
	queue.WriteBuffer(b.Buffer, 0, data)
}

// Release frees the GPU buffer.
func (b *Buffer) Release() {
	if b.Buffer != nil {
		b.Buffer.Release()
		b.Buffer = nil
	}
}

// NewVertexBuffer3D uploads 3D vertices to a new vertex buffer.
func NewVertexBuffer3D(device *wgpu.Device, queue *wgpu.Queue, verts []Vertex3D) (*Buffer, error) {
	return newBuffer(device, queue, "vertex3d", Vertex3DBytes(verts), wgpu.BufferUsageVertex, len(verts))
}

// NewVertexBuffer2D uploads 2D vertices to a new vertex buffer.
func NewVertexBuffer2D(device *wgpu.Device, queue *wgpu.Queue, verts []Vertex2D) (*Buffer, error) {
	return newBuffer(device, queue, "vertex2d", Vertex2DBytes(verts), wgpu.BufferUsageVertex, len(verts))
}

// NewIndexBuffer uploads u32 indices to a new index buffer.
func NewIndexBuffer(device *wgpu.Device, queue *wgpu.Queue, indices []uint32) (*Buffer, error) {
	return newBuffer(device, queue, "index", sliceBytes(indices), wgpu.BufferUsageIndex, len(indices))
}

// NewCameraBuffer uploads the camera uniform block to a new uniform
// buffer. Overwrite it each frame with UpdateCamera.
func NewCameraBuffer(device *wgpu.Device, queue *wgpu.Queue, cam *CameraUniform) (*Buffer, error) {
	return newBuffer(device, queue, "camera", cam.Bytes(), wgpu.BufferUsageUniform, 1)
}

// UpdateCamera overwrites (never merges) the camera uniform buffer,
// the once-per-frame camera update.
func (b *Buffer) UpdateCamera(queue *wgpu.Queue, cam *CameraUniform) {
	b.Write(queue, cam.Bytes())
}

// IndexedVertices pairs a vertex buffer with its u32 index buffer, the
// unit both pipelines draw.
type IndexedVertices struct {
	Vertices *Buffer
	Indices  *Buffer
}

// NewIndexedVertices3D uploads an indexed 3D mesh.
func NewIndexedVertices3D(device *wgpu.Device, queue *wgpu.Queue, verts []Vertex3D, indices []uint32) (*IndexedVertices, error) {
	vb, err := NewVertexBuffer3D(device, queue, verts)
	if err != nil {
		return nil, err
	}
	ib, err := NewIndexBuffer(device, queue, indices)
	if err != nil {
		vb.Release()
		return nil, err
	}
	return &IndexedVertices{Vertices: vb, Indices: ib}, nil
}

// NewIndexedVertices2D uploads indexed 2D overlay geometry.
func NewIndexedVertices2D(device *wgpu.Device, queue *wgpu.Queue, verts []Vertex2D, indices []uint32) (*IndexedVertices, error) {
	vb, err := NewVertexBuffer2D(device, queue, verts)
	if err != nil {
		return nil, err
	}
	ib, err := NewIndexBuffer(device, queue, indices)
	if err != nil {
		vb.Release()
		return nil, err
	}
	return &IndexedVertices{Vertices: vb, Indices: ib}, nil
}

// Draw binds the vertex and index buffers and issues one indexed draw.
func (iv *IndexedVertices) Draw(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, iv.Vertices.Buffer, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(iv.Indices.Buffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	rp.DrawIndexed(uint32(iv.Indices.N), 1, 0, 0, 0)
}

// Release frees both buffers.
func (iv *IndexedVertices) Release() {
	iv.Vertices.Release()
	iv.Indices.Release()
}
