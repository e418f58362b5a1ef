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

package lines

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform returns a copy of g with every endpoint mapped through m.
func (g Group) Transform(m matrix.Matrix) Group {
	res := make(Group, len(g))
	for i, l := range g {
		res[i] = l.Transform(m)
	}
	return res
}

// Scaled multiplies every endpoint by s.
func (g Group) Scaled(s float64) Group {
	res := make(Group, len(g))
	for i, l := range g {
		res[i] = Line{A: l.A.Mul(s), B: l.B.Mul(s)}
	}
	return res
}

// Rotated rotates every endpoint about the origin by deg degrees,
// counter-clockwise for positive angles.
func (g Group) Rotated(deg float64) Group {
	return g.Transform(matrix.RotateDeg(deg))
}

// Offset translates every endpoint by v.
func (g Group) Offset(v vec.Vec2) Group {
	res := make(Group, len(g))
	for i, l := range g {
		res[i] = Line{A: l.A.Add(v), B: l.B.Add(v)}
	}
	return res
}

// FlippedV negates the y coordinate of every endpoint.
func (g Group) FlippedV() Group {
	res := make(Group, len(g))
	for i, l := range g {
		res[i] = Line{
			A: vec.Vec2{X: l.A.X, Y: -l.A.Y},
			B: vec.Vec2{X: l.B.X, Y: -l.B.Y},
		}
	}
	return res
}

// Centered moves g so that the centre of its bounding box is at the origin.
// An empty group is returned unchanged.
func (g Group) Centered() Group {
	b, err := g.BBox()
	if err != nil {
		return Group{}
	}
	c := vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}
	return g.Offset(c.Mul(-1))
}
