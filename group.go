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
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrEmptyShape is returned by operations which need at least one segment.
var ErrEmptyShape = errors.New("empty shape")

// Group is an ordered sequence of line segments.
//
// Duplicate segments are allowed and are never removed implicitly.
// The order only matters for path construction and for [Group.UniquePoints];
// it has no effect on rendering.  The zero value is an empty group.
type Group []Line

// Empty returns a group without segments.
func Empty() Group {
	return Group{}
}

// Single returns a group holding one segment.
func Single(l Line) Group {
	return Group{l}
}

// FromLines returns a group holding the given segments, in order.
func FromLines(ls ...Line) Group {
	return slices.Clone(Group(ls))
}

// Len returns the number of segments.
func (g Group) Len() int {
	return len(g)
}

// Clone returns a copy of g which does not share storage with g.
func (g Group) Clone() Group {
	if g == nil {
		return Group{}
	}
	return slices.Clone(g)
}

// Concat returns the segments of g followed by the segments of each of
// the other groups.
func (g Group) Concat(others ...Group) Group {
	n := len(g)
	for _, o := range others {
		n += len(o)
	}
	res := make(Group, 0, n)
	res = append(res, g...)
	for _, o := range others {
		res = append(res, o...)
	}
	return res
}

// Points returns all endpoints in traversal order: A and B of the first
// segment, then A and B of the second segment, and so on.
func (g Group) Points() []vec.Vec2 {
	pts := make([]vec.Vec2, 0, 2*len(g))
	for _, l := range g {
		pts = append(pts, l.A, l.B)
	}
	return pts
}

// UniquePoints returns the endpoints of g in the order they are first seen.
// Points are compared for exact equality.
func (g Group) UniquePoints() []vec.Vec2 {
	seen := make(map[vec.Vec2]struct{}, 2*len(g))
	var pts []vec.Vec2
	for _, l := range g {
		for _, p := range [2]vec.Vec2{l.A, l.B} {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pts = append(pts, p)
		}
	}
	return pts
}

// UniqueLoopedPoints returns the unique endpoints of g with the first point
// appended again at the end.  The result describes a closed polygon, as
// expected by collision backends.
func (g Group) UniqueLoopedPoints() ([]vec.Vec2, error) {
	if len(g) == 0 {
		return nil, ErrEmptyShape
	}
	pts := g.UniquePoints()
	return append(pts, pts[0]), nil
}

// Continuous connects consecutive points by segments.
// For k points the result has k-1 segments, or none if k < 2.
func Continuous(points []vec.Vec2) Group {
	if len(points) < 2 {
		return Group{}
	}
	g := make(Group, 0, len(points))
	for i := 1; i < len(points); i++ {
		g = append(g, Line{A: points[i-1], B: points[i]})
	}
	return g
}

// ContinuousClosed is like [Continuous], but adds a final segment from the
// last point back to the first.  The closing segment is only added if at
// least one other segment exists.
func ContinuousClosed(points []vec.Vec2) Group {
	g := Continuous(points)
	if len(g) > 0 {
		g = append(g, Line{A: points[len(points)-1], B: points[0]})
	}
	return g
}

// BBox returns the axis-aligned bounding box of all endpoints.
func (g Group) BBox() (rect.Rect, error) {
	if len(g) == 0 {
		return rect.Rect{}, ErrEmptyShape
	}
	b := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, l := range g {
		for _, p := range [2]vec.Vec2{l.A, l.B} {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b, nil
}

// BoundingSize returns the largest absolute coordinate of the two corners
// of the bounding box.
//
// This is a cheap scale proxy used for normalisation.  It is not the radius
// of a circle enclosing the shape: a square with corners (±1, ±1) has
// bounding size 1.
func (g Group) BoundingSize() (float64, error) {
	b, err := g.BBox()
	if err != nil {
		return 0, err
	}
	return max(math.Abs(b.LLx), math.Abs(b.LLy), math.Abs(b.URx), math.Abs(b.URy)), nil
}

// Pieces splits g into one single-segment group per line, each centred on
// the midpoint of its segment.  The midpoints are returned in the same
// order, so that piece i offset by center i reproduces segment i.
func (g Group) Pieces() (pieces []Group, centers []vec.Vec2) {
	pieces = make([]Group, len(g))
	centers = make([]vec.Vec2, len(g))
	for i, l := range g {
		m := l.Midpoint()
		pieces[i] = Group{{A: l.A.Sub(m), B: l.B.Sub(m)}}
		centers[i] = m
	}
	return pieces, centers
}

// Path returns g as a path with one sub-path per segment.
func (g Group) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, l := range g {
			buf[0] = l.A
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = l.B
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}
