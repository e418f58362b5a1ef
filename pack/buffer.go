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

package pack

import (
	"encoding/binary"
	"fmt"
	"math"

	"seehuhn.de/go/lines"
)

// Capacity is the number of segment records in a [Buffer].
// The stroke shader declares an array of exactly this length.
const Capacity = 256

const (
	recordSize  = 16 // one vec4<f32>
	widthOffset = Capacity * recordSize

	// UniformSize is the size in bytes of the uniform block produced by
	// [Settings.Bytes]: the line array, the width, and padding up to the
	// 16 byte alignment of the struct.
	UniformSize = widthOffset + 16
)

// Buffer is the fixed-size segment array uploaded to the shader.
// Each record is (ax, ay, bx, by).  Unused records are zero, which the
// shader treats as a degenerate segment at the origin.
type Buffer [Capacity][4]float32

// NewBuffer packs the segments of g into a buffer and returns it together
// with the number of occupied records.  If g has more than [Capacity]
// segments, [ErrCapacityExceeded] is returned.  Nothing is truncated.
func NewBuffer(g lines.Group) (*Buffer, int, error) {
	if len(g) > Capacity {
		return nil, 0, fmt.Errorf("%w: %d segments, capacity %d",
			ErrCapacityExceeded, len(g), Capacity)
	}
	buf := &Buffer{}
	for i, l := range g {
		buf[i] = l.Packed()
	}
	return buf, len(g), nil
}

// Settings is the unit handed to the rendering backend: the packed
// segments and the stroke width.
type Settings struct {
	Lines Buffer
	Width float32

	// Count is the number of occupied records in Lines.
	// It is not part of the uniform data.
	Count int
}

// Validate checks the invariants of s.
func (s *Settings) Validate() error {
	if s.Count < 0 || s.Count > Capacity {
		return fmt.Errorf("%w: count %d", ErrCapacityExceeded, s.Count)
	}
	for i := s.Count; i < Capacity; i++ {
		if s.Lines[i] != ([4]float32{}) {
			return fmt.Errorf("unused record %d is not zero", i)
		}
	}
	if !validWidth(float64(s.Width)) {
		return fmt.Errorf("%w %g", ErrInvalidWidth, s.Width)
	}
	return nil
}

// Bytes returns the uniform block for s, in the std140 layout of
//
//	struct LineMaterial {
//	    lines: array<vec4<f32>, 256>,
//	    width: f32,
//	}
//
// All values are little-endian.
func (s *Settings) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, UniformSize))
}

// AppendBytes appends the uniform block for s to buf.
func (s *Settings) AppendBytes(buf []byte) []byte {
	start := len(buf)
	buf = append(buf, make([]byte, UniformSize)...)
	out := buf[start:]
	for i, rec := range s.Lines {
		for j, v := range rec {
			binary.LittleEndian.PutUint32(out[i*recordSize+4*j:], math.Float32bits(v))
		}
	}
	binary.LittleEndian.PutUint32(out[widthOffset:], math.Float32bits(s.Width))
	return buf
}
