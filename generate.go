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
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// circleSteps is the number of angular steps per full turn used by
// [CirclePoints].  It does not depend on the requested resolution, so only
// resolution 8 gives a regular polygon: smaller values leave an open arc
// which is then closed by a chord, larger values wrap around the circle
// more than once.
//
// TODO(voss): confirm whether the step should be 1/resolution before
// changing this; existing shapes depend on the current output.
const circleSteps = 8

// CirclePoints returns the vertices used by [Circle].
// Vertex i lies on the circle of the given radius at angle 2π·i/8.
func CirclePoints(radius float64, resolution int) []vec.Vec2 {
	pts := make([]vec.Vec2, max(resolution, 0))
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / circleSteps
		pts[i] = vec.Vec2{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)}
	}
	return pts
}

// Circle approximates a circle of the given radius by a closed polygon
// through resolution vertices.  See [CirclePoints] for the vertex
// placement.
func Circle(radius float64, resolution int) Group {
	return ContinuousClosed(CirclePoints(radius, resolution))
}

// JitteredCircle is like [Circle], but each vertex is moved by independent
// uniform noise in [-jitter, jitter] along both axes.
func JitteredCircle(rng *rand.Rand, radius float64, resolution int, jitter float64) Group {
	pts := CirclePoints(radius, resolution)
	for i := range pts {
		pts[i] = pts[i].Add(uniformOffset(rng, jitter))
	}
	return ContinuousClosed(pts)
}

// RegularPolygon returns a closed polygon with n vertices on the circle of
// the given radius, the first vertex on the positive x-axis.
func RegularPolygon(radius float64, n int) Group {
	pts := make([]vec.Vec2, max(n, 0))
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)}
	}
	return ContinuousClosed(pts)
}

// Rectangle returns the closed outline of an axis-aligned rectangle
// centred at the origin.
func Rectangle(width, height float64) Group {
	w, h := width/2, height/2
	return ContinuousClosed([]vec.Vec2{
		{X: -w, Y: -h},
		{X: w, Y: -h},
		{X: w, Y: h},
		{X: -w, Y: h},
	})
}

// uniformOffset returns a vector with both components drawn uniformly
// from [-r, r].
func uniformOffset(rng *rand.Rand, r float64) vec.Vec2 {
	return vec.Vec2{
		X: (2*rng.Float64() - 1) * r,
		Y: (2*rng.Float64() - 1) * r,
	}
}

// uniformAngle returns an angle in degrees, drawn uniformly from [0, 360).
func uniformAngle(rng *rand.Rand) float64 {
	return 360 * rng.Float64()
}
