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

package gpupool

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/history"
	"seehuhn.de/go/lines/pack"
	"seehuhn.de/go/lines/stroke"
)

// recordingDevice passes buffer calls on to a noop device and remembers
// what was asked for.
type recordingDevice struct {
	hal.Device
	created   []hal.BufferDescriptor
	destroyed int
}

func (d *recordingDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	d.created = append(d.created, *desc)
	return d.Device.CreateBuffer(desc)
}

func (d *recordingDevice) DestroyBuffer(b hal.Buffer) {
	d.destroyed++
	d.Device.DestroyBuffer(b)
}

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (*recordingDevice, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return &recordingDevice{Device: openDev.Device}, openDev.Queue
}

func packedSquare(t *testing.T) *pack.Result {
	t.Helper()
	res, err := pack.Pack(lines.Rectangle(10, 10), 1)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestPoolAllocates(t *testing.T) {
	device, queue := createNoopDevice(t)
	p := New(device, queue)
	defer p.Close()

	res := packedSquare(t)
	quad, err := p.AddQuad(res.HalfSize)
	if err != nil {
		t.Fatal(err)
	}
	mat, err := p.AddMaterial(&res.Settings)
	if err != nil {
		t.Fatal(err)
	}
	if quad == mat {
		t.Errorf("quad and material share id %d", quad)
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d, want 2", p.Len())
	}
	for _, id := range []stroke.AssetID{quad, mat} {
		if b, ok := p.Buffer(id); !ok || b == nil {
			t.Errorf("no buffer for id %d", id)
		}
	}

	if len(device.created) != 2 {
		t.Fatalf("%d buffers created, want 2", len(device.created))
	}
	q, m := device.created[0], device.created[1]
	if q.Size != quadVertices*QuadVertexStride || q.Usage&gputypes.BufferUsageVertex == 0 {
		t.Errorf("quad buffer: size %d, usage %v", q.Size, q.Usage)
	}
	if m.Size != pack.UniformSize || m.Usage&gputypes.BufferUsageUniform == 0 {
		t.Errorf("material buffer: size %d, usage %v", m.Size, m.Usage)
	}
}

func TestPoolRejectsInvalidMaterial(t *testing.T) {
	device, queue := createNoopDevice(t)
	p := New(device, queue)
	defer p.Close()

	bad := &pack.Settings{Width: 0, Count: 1}
	if _, err := p.AddMaterial(bad); !errors.Is(err, pack.ErrInvalidWidth) {
		t.Errorf("got %v, want ErrInvalidWidth", err)
	}
	if len(device.created) != 0 || p.Len() != 0 {
		t.Error("invalid material was uploaded")
	}
}

func TestPoolRelease(t *testing.T) {
	device, queue := createNoopDevice(t)
	p := New(device, queue)
	defer p.Close()

	a, err := p.AddQuad(1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.AddQuad(2)
	if err != nil {
		t.Fatal(err)
	}

	p.Release(a)
	p.Release(a)
	if p.Len() != 1 || device.destroyed != 1 {
		t.Errorf("after release: Len = %d, %d buffers destroyed", p.Len(), device.destroyed)
	}
	if _, ok := p.Buffer(a); ok {
		t.Error("released buffer still present")
	}
	if _, ok := p.Buffer(b); !ok {
		t.Error("other buffer was released")
	}

	// ids are not reused
	c, err := p.AddQuad(3)
	if err != nil {
		t.Fatal(err)
	}
	if c == a || c == b {
		t.Errorf("id %d handed out twice", c)
	}
}

func TestPoolClose(t *testing.T) {
	device, queue := createNoopDevice(t)
	p := New(device, queue)

	res := packedSquare(t)
	if _, err := p.AddQuad(res.HalfSize); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddMaterial(&res.Settings); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if device.destroyed != 2 || p.Len() != 0 {
		t.Errorf("after Close: %d buffers destroyed, Len = %d", device.destroyed, p.Len())
	}

	if _, err := p.AddQuad(1); !errors.Is(err, ErrClosed) {
		t.Errorf("AddQuad after Close: got %v", err)
	}
	if _, err := p.AddMaterial(&res.Settings); !errors.Is(err, ErrClosed) {
		t.Errorf("AddMaterial after Close: got %v", err)
	}
}

func TestPoolServesRenderer(t *testing.T) {
	device, queue := createNoopDevice(t)
	p := New(device, queue)
	defer p.Close()

	r := stroke.NewRenderer(p, nil)
	h, err := r.Submit(history.NewID(), lines.Circle(5, 8), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Buffer(h.Quad); !ok {
		t.Error("quad buffer missing")
	}
	if _, ok := p.Buffer(h.Material); !ok {
		t.Error("material buffer missing")
	}
}

// TestQuadTextureCoordinates checks that the texture coordinates of the
// quad match the flipped unit square used by the packer: uv·2-1 must be
// (x/h, -y/h) for every vertex.
func TestQuadTextureCoordinates(t *testing.T) {
	const h = 12.5
	data := QuadBytes(h)
	if len(data) != quadVertices*QuadVertexStride {
		t.Fatalf("got %d bytes", len(data))
	}
	read := func(off int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	}
	for i := range quadVertices {
		base := i * QuadVertexStride
		x, y, u, v := read(base), read(base+4), read(base+8), read(base+12)
		if math.Abs(x) != h || math.Abs(y) != h {
			t.Errorf("vertex %d at (%g, %g) is not a corner", i, x, y)
		}
		if 2*u-1 != x/h || 2*v-1 != -y/h {
			t.Errorf("vertex %d: uv (%g, %g) does not match position (%g, %g)", i, u, v, x, y)
		}
	}
}

func TestQuadWinding(t *testing.T) {
	data := QuadBytes(1)
	read := func(vertex, comp int) float64 {
		off := vertex*QuadVertexStride + 4*comp
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:])))
	}
	for tri := range 2 {
		a, b, c := 3*tri, 3*tri+1, 3*tri+2
		cross := (read(b, 0)-read(a, 0))*(read(c, 1)-read(a, 1)) -
			(read(b, 1)-read(a, 1))*(read(c, 0)-read(a, 0))
		if cross <= 0 {
			t.Errorf("triangle %d is not counter-clockwise", tri)
		}
	}
}
