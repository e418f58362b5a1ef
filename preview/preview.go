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

// Package preview renders packed stroke settings on the CPU.
//
// The coverage rule is the one of the stroke shader: a pixel is covered
// if its centre is within half the stroke width of a segment, with a
// smoothstep transition at the border.  Zero-length segments are not
// drawn.
package preview

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines/pack"
)

// defaultEdge is the half-width of the anti-aliasing transition, in pixels.
const defaultEdge = 0.5

// segment is a packed record in pixel coordinates.
type segment struct {
	a, b       vec.Vec2
	ab         vec.Vec2
	len2       float64
	yMin, yMax float64 // vertical extent including the stroke
}

// Rasteriser draws the quad of a packed shape into a square of pixels.
// The caller creates one instance and reuses it; internal buffers grow
// as needed but never shrink.
type Rasteriser struct {
	// Size is the side length of the output square, in pixels.
	// Must be > 0.
	Size int

	// Edge is the half-width of the anti-aliasing transition, in pixels.
	// Must be >= 0.
	Edge float64

	segs   []segment
	active []int
	row    []float32
}

// NewRasteriser returns a rasteriser for a square of the given size.
func NewRasteriser(size int) *Rasteriser {
	return &Rasteriser{
		Size: size,
		Edge: defaultEdge,
	}
}

// HalfWidth returns half the stroke width of s, in pixels of a square of
// the given size.
func HalfWidth(s *pack.Settings, size int) float64 {
	unit := 0.5 * float64(s.Width) / (pack.ReferenceSize * pack.Padding)
	return unit * float64(size) / 2
}

// Draw renders s.  The emit callback receives coverage values in [0, 1]
// row by row, starting at column xMin; rows without coverage are skipped.
// The slice is only valid during the call.
func (r *Rasteriser) Draw(s *pack.Settings, emit func(y, xMin int, coverage []float32)) {
	size := r.Size
	if size <= 0 {
		return
	}
	hw := HalfWidth(s, size)
	reach := hw + r.Edge

	r.collectSegments(s, reach)
	if len(r.segs) == 0 {
		return
	}

	if cap(r.row) < size {
		r.row = make([]float32, size)
	}
	row := r.row[:size]

	for y := range size {
		py := float64(y) + 0.5

		r.active = r.active[:0]
		for i := range r.segs {
			if py >= r.segs[i].yMin && py <= r.segs[i].yMax {
				r.active = append(r.active, i)
			}
		}
		if len(r.active) == 0 {
			continue
		}

		for x := range size {
			p := vec.Vec2{X: float64(x) + 0.5, Y: py}
			d := math.Inf(1)
			for _, i := range r.active {
				d = min(d, r.segs[i].distance(p))
			}
			row[x] = float32(coverage(d, hw, r.Edge))
		}

		trimmed, offset := trimZeros(row)
		if len(trimmed) > 0 {
			emit(y, offset, trimmed)
		}
	}
}

// collectSegments converts the occupied records of s to pixel coordinates.
func (r *Rasteriser) collectSegments(s *pack.Settings, reach float64) {
	r.segs = r.segs[:0]
	half := float64(r.Size) / 2
	toPixel := func(x, y float32) vec.Vec2 {
		return vec.Vec2{X: (float64(x) + 1) * half, Y: (float64(y) + 1) * half}
	}

	n := min(max(s.Count, 0), pack.Capacity)
	for _, rec := range s.Lines[:n] {
		a := toPixel(rec[0], rec[1])
		b := toPixel(rec[2], rec[3])
		ab := b.Sub(a)
		len2 := ab.Dot(ab)
		if len2 <= 0 {
			continue
		}
		r.segs = append(r.segs, segment{
			a:    a,
			b:    b,
			ab:   ab,
			len2: len2,
			yMin: min(a.Y, b.Y) - reach,
			yMax: max(a.Y, b.Y) + reach,
		})
	}
}

func (s *segment) distance(p vec.Vec2) float64 {
	t := p.Sub(s.a).Dot(s.ab) / s.len2
	t = min(max(t, 0), 1)
	return p.Sub(s.a.Add(s.ab.Mul(t))).Length()
}

// coverage maps the distance d from a segment to a coverage value, with a
// smoothstep transition of half-width edge around the border at hw.
func coverage(d, hw, edge float64) float64 {
	if edge <= 0 {
		if d <= hw {
			return 1
		}
		return 0
	}
	t := (d - (hw - edge)) / (2 * edge)
	t = min(max(t, 0), 1)
	return 1 - t*t*(3-2*t)
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the offset of its first element.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	start := 0
	for start < len(coverage) && coverage[start] == 0 {
		start++
	}
	end := len(coverage)
	for end > start && coverage[end-1] == 0 {
		end--
	}
	return coverage[start:end], start
}

// Image renders s into a new grayscale image of the given size.
func Image(s *pack.Settings, size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	r := NewRasteriser(size)
	r.Draw(s, func(y, xMin int, cov []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range cov {
			row[i] = byte(max(0, min(255, int(c*256))))
		}
	})
	return img
}
