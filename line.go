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

// Package lines generates shapes as ordered collections of straight line
// segments.
//
// Shapes are built from generators (polygons, circle approximations, text),
// combined by concatenation, and moved around with the transforms on [Group].
// The package [seehuhn.de/go/lines/pack] turns a group into the fixed-size
// buffer consumed by the stroke shader.
package lines

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Line is a single segment from A to B.
// The direction is preserved but has no meaning for rendering.
type Line struct {
	A, B vec.Vec2
}

// NewLine returns the segment from a to b.
func NewLine(a, b vec.Vec2) Line {
	return Line{A: a, B: b}
}

// L is a shorthand for a segment given by its coordinates.
func L(ax, ay, bx, by float64) Line {
	return Line{A: vec.Vec2{X: ax, Y: ay}, B: vec.Vec2{X: bx, Y: by}}
}

// Packed returns the segment as (ax, ay, bx, by), the record layout of the
// shader's line buffer.
func (l Line) Packed() [4]float32 {
	return [4]float32{float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y)}
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return l.B.Sub(l.A).Length()
}

// Midpoint returns the point halfway between A and B.
func (l Line) Midpoint() vec.Vec2 {
	return l.A.Add(l.B).Mul(0.5)
}

// Transform applies m to both endpoints.
func (l Line) Transform(m matrix.Matrix) Line {
	return Line{A: apply(m, l.A), B: apply(m, l.B)}
}

// apply maps p through the affine transformation m, using the PDF
// convention x' = a·x + c·y + e, y' = b·x + d·y + f.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
