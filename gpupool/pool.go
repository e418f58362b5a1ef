// seehuhn.de/go/lines - procedural line geometry for stroke rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gpupool allocates stroke assets as WebGPU buffers.
//
// Every quad becomes a vertex buffer and every material a uniform buffer
// laid out as expected by package shader.  Buffers are never updated in
// place.  The owner of the pool decides when to [Pool.Release] them.
package gpupool

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/pack"
	"seehuhn.de/go/lines/stroke"
)

// QuadVertexStride is the size of one quad vertex: position (x, y) and
// texture coordinate (u, v), all float32.
const QuadVertexStride = 16

// quadVertices is the number of vertices of the two triangles of a quad.
const quadVertices = 6

// ErrClosed is returned after [Pool.Close].
var ErrClosed = errors.New("gpupool: pool closed")

// Pool implements [stroke.Assets] on a WebGPU device.
type Pool struct {
	device hal.Device
	queue  hal.Queue

	mu      sync.Mutex
	buffers map[stroke.AssetID]hal.Buffer
	next    stroke.AssetID
	closed  bool
}

var _ stroke.Assets = (*Pool)(nil)

// New returns a pool allocating buffers on device and uploading through
// queue.
func New(device hal.Device, queue hal.Queue) *Pool {
	return &Pool{
		device:  device,
		queue:   queue,
		buffers: make(map[stroke.AssetID]hal.Buffer),
	}
}

// AddQuad implements [stroke.Assets].
func (p *Pool) AddQuad(halfSize float64) (stroke.AssetID, error) {
	return p.upload("stroke_quad", QuadBytes(halfSize),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
}

// AddMaterial implements [stroke.Assets].
func (p *Pool) AddMaterial(s *pack.Settings) (stroke.AssetID, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return p.upload("stroke_material", s.Bytes(),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
}

// Buffer returns the GPU buffer of an allocation, for binding.
func (p *Pool) Buffer(id stroke.AssetID) (hal.Buffer, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.buffers[id]
	return b, ok
}

// Release destroys the buffer of an allocation.
// Releasing an unknown id does nothing.
func (p *Pool) Release(id stroke.AssetID) {
	p.mu.Lock()
	b, ok := p.buffers[id]
	delete(p.buffers, id)
	p.mu.Unlock()
	if ok {
		p.device.DestroyBuffer(b)
	}
}

// Len returns the number of live buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buffers)
}

// Close destroys all buffers.  The device and queue are not closed.
func (p *Pool) Close() error {
	p.mu.Lock()
	bufs := p.buffers
	p.buffers = nil
	p.closed = true
	p.mu.Unlock()

	for _, b := range bufs {
		p.device.DestroyBuffer(b)
	}
	lines.Logger().WithField("buffers", len(bufs)).Info("gpupool: closed")
	return nil
}

func (p *Pool) upload(label string, data []byte, usage gputypes.BufferUsage) (stroke.AssetID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrClosed
	}

	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)

	id := p.next
	p.next++
	p.buffers[id] = buf

	lines.Logger().WithFields(logrus.Fields{
		"label": label,
		"id":    id,
		"bytes": len(data),
	}).Debug("gpupool: buffer created")
	return id, nil
}

// QuadBytes returns the vertex data of a quad with the given half-size:
// two counter-clockwise triangles, each vertex holding its position and a
// texture coordinate with y pointing down.
func QuadBytes(halfSize float64) []byte {
	h := float32(halfSize)
	verts := [quadVertices][4]float32{
		{-h, -h, 0, 1},
		{h, -h, 1, 1},
		{h, h, 1, 0},
		{-h, -h, 0, 1},
		{h, h, 1, 0},
		{-h, h, 0, 0},
	}
	data := make([]byte, quadVertices*QuadVertexStride)
	for i, v := range verts {
		for j, x := range v {
			binary.LittleEndian.PutUint32(data[i*QuadVertexStride+4*j:], math.Float32bits(x))
		}
	}
	return data
}
