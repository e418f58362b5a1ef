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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// triangle is a shape with bounding size 10.
var triangle = ContinuousClosed([]vec.Vec2{{X: -10, Y: -5}, {X: 10, Y: -5}, {X: 0, Y: 8}})

func TestConstruction(t *testing.T) {
	if n := Empty().Len(); n != 0 {
		t.Errorf("Empty has %d segments", n)
	}
	l := L(1, 2, 3, 4)
	if g := Single(l); len(g) != 1 || g[0] != l {
		t.Errorf("Single = %v", g)
	}
	if g := FromLines(l, l); len(g) != 2 {
		t.Errorf("FromLines kept %d segments, want 2 (duplicates are kept)", len(g))
	}
}

func TestConcat(t *testing.T) {
	a := FromLines(L(0, 0, 1, 0), L(1, 0, 1, 1))
	b := FromLines(L(5, 5, 6, 6))
	got := a.Concat(b, a)
	want := Group{a[0], a[1], b[0], a[0], a[1]}
	if !slices.Equal(got, want) {
		t.Errorf("Concat = %v, want %v", got, want)
	}
	got[0].A.X = 42
	if a[0].A.X == 42 {
		t.Error("Concat shares storage with its receiver")
	}
}

func TestPoints(t *testing.T) {
	g := FromLines(L(0, 0, 1, 0), L(1, 0, 1, 1), L(0, 0, 1, 0))
	all := g.Points()
	if len(all) != 6 {
		t.Fatalf("Points returned %d points, want 6", len(all))
	}
	unique := g.UniquePoints()
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if !slices.Equal(unique, want) {
		t.Errorf("UniquePoints = %v, want %v", unique, want)
	}
}

func TestUniqueLoopedPoints(t *testing.T) {
	shapes := map[string]Group{
		"triangle": triangle,
		"circle":   Circle(3, 8),
		"single":   Single(L(1, 1, 2, 2)),
		"doubled":  triangle.Concat(triangle),
		"point":    Single(L(1, 1, 1, 1)),
	}
	for name, g := range shapes {
		t.Run(name, func(t *testing.T) {
			pts, err := g.UniqueLoopedPoints()
			if err != nil {
				t.Fatal(err)
			}
			if pts[0] != pts[len(pts)-1] {
				t.Errorf("loop not closed: %v", pts)
			}
			interior := pts[:len(pts)-1]
			seen := map[vec.Vec2]bool{}
			for _, p := range interior {
				if seen[p] {
					t.Errorf("duplicate point %v", p)
				}
				seen[p] = true
			}
		})
	}

	if _, err := Empty().UniqueLoopedPoints(); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("empty group: got %v, want ErrEmptyShape", err)
	}
}

func TestContinuous(t *testing.T) {
	pts := func(k int) []vec.Vec2 {
		res := make([]vec.Vec2, k)
		for i := range res {
			res[i] = vec.Vec2{X: float64(i), Y: float64(i * i)}
		}
		return res
	}
	for k := range 7 {
		open := Continuous(pts(k))
		closed := ContinuousClosed(pts(k))
		wantOpen := max(k-1, 0)
		wantClosed := k
		if k < 2 {
			wantClosed = 0
		}
		if len(open) != wantOpen {
			t.Errorf("k=%d: Continuous gave %d segments, want %d", k, len(open), wantOpen)
		}
		if len(closed) != wantClosed {
			t.Errorf("k=%d: ContinuousClosed gave %d segments, want %d", k, len(closed), wantClosed)
		}
		if k >= 2 {
			last := closed[len(closed)-1]
			if last.A != pts(k)[k-1] || last.B != pts(k)[0] {
				t.Errorf("k=%d: closing segment is %v", k, last)
			}
		}
	}
}

func TestBBox(t *testing.T) {
	b, err := triangle.BBox()
	if err != nil {
		t.Fatal(err)
	}
	want := rect.Rect{LLx: -10, LLy: -5, URx: 10, URy: 8}
	if b != want {
		t.Errorf("BBox = %v, want %v", b, want)
	}
	r, err := triangle.BoundingSize()
	if err != nil {
		t.Fatal(err)
	}
	if r != 10 {
		t.Errorf("BoundingSize = %g, want 10", r)
	}

	// The bounding size is not an enclosing radius.
	sq := Rectangle(2, 2)
	if r, _ := sq.BoundingSize(); r != 1 {
		t.Errorf("square: BoundingSize = %g, want 1", r)
	}

	if _, err := Empty().BBox(); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("empty BBox: got %v", err)
	}
	if _, err := Empty().BoundingSize(); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("empty BoundingSize: got %v", err)
	}
}

func TestCircleLiteralStep(t *testing.T) {
	// Vertex i is at angle 2π·i/8 regardless of the resolution.
	pts := CirclePoints(2, 12)
	for i, p := range pts {
		phi := 2 * math.Pi * float64(i) / 8
		want := vec.Vec2{X: 2 * math.Cos(phi), Y: 2 * math.Sin(phi)}
		if p.Sub(want).Length() > 1e-12 {
			t.Errorf("vertex %d = %v, want %v", i, p, want)
		}
	}
	if g := Circle(2, 12); len(g) != 12 {
		t.Errorf("Circle has %d segments, want 12", len(g))
	}
	if g := Circle(2, 1); len(g) != 0 {
		t.Errorf("Circle with one vertex has %d segments", len(g))
	}
}

func TestJitteredCircle(t *testing.T) {
	rng := newRand(1)
	const jitter = 0.5
	g := JitteredCircle(rng, 5, 8, jitter)
	if len(g) != 8 {
		t.Fatalf("got %d segments, want 8", len(g))
	}
	ref := CirclePoints(5, 8)
	for i, l := range g {
		d := l.A.Sub(ref[i])
		if math.Abs(d.X) > jitter || math.Abs(d.Y) > jitter {
			t.Errorf("vertex %d moved by %v, more than %g", i, d, jitter)
		}
	}
}

func TestPieces(t *testing.T) {
	pieces, centers := triangle.Pieces()
	if len(pieces) != len(triangle) || len(centers) != len(triangle) {
		t.Fatalf("got %d pieces", len(pieces))
	}
	for i, p := range pieces {
		if len(p) != 1 {
			t.Fatalf("piece %d has %d segments", i, len(p))
		}
		if m := p[0].Midpoint(); m.Length() > 1e-12 {
			t.Errorf("piece %d not centred: midpoint %v", i, m)
		}
		back := p.Offset(centers[i])[0]
		if back.A.Sub(triangle[i].A).Length() > 1e-12 || back.B.Sub(triangle[i].B).Length() > 1e-12 {
			t.Errorf("piece %d does not reproduce %v: %v", i, triangle[i], back)
		}
	}
}

func TestPath(t *testing.T) {
	g := FromLines(L(0, 0, 1, 0), L(2, 2, 3, 3))
	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range g.Path() {
		cmds = append(cmds, cmd)
		pts = append(pts, p...)
	}
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdMoveTo, path.CmdLineTo}
	if !slices.Equal(cmds, wantCmds) {
		t.Errorf("commands = %v, want %v", cmds, wantCmds)
	}
	if !slices.Equal(pts, g.Points()) {
		t.Errorf("points = %v, want %v", pts, g.Points())
	}
}

func TestPacked(t *testing.T) {
	if got := L(1, 2, 3, 4).Packed(); got != [4]float32{1, 2, 3, 4} {
		t.Errorf("Packed = %v", got)
	}
}
