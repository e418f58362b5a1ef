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

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/vec"
)

// ScatterAttempts is the number of candidate positions tried for each
// instance placed by [Scatter].
const ScatterAttempts = 64

// Scatter places up to count copies of template inside the disk of the
// given radius around the origin.
//
// For every copy, up to [ScatterAttempts] candidate points are drawn
// uniformly from the disk.  The first candidate whose distance to every
// previously accepted point is at least the bounding size of the template
// is accepted.  If no candidate qualifies, the copy is skipped, so the
// result may contain fewer than count copies.  If rotate is set, every copy
// is rotated by an independent uniform angle before being placed.
//
// An empty template gives an empty result.
func Scatter(rng *rand.Rand, template Group, radius float64, count int, rotate bool) Group {
	spacing, err := template.BoundingSize()
	if err != nil {
		return Group{}
	}

	var accepted []vec.Vec2
	res := make(Group, 0, len(template)*max(count, 0))
	for slot := range count {
		p, ok := samplePlacement(rng, radius, spacing, accepted)
		if !ok {
			Logger().WithFields(logrus.Fields{
				"slot":     slot,
				"attempts": ScatterAttempts,
				"spacing":  spacing,
			}).Debug("scatter: no free position, slot skipped")
			continue
		}
		accepted = append(accepted, p)
		res = append(res, placeCopy(rng, template, p, rotate)...)
	}
	return res
}

// samplePlacement draws candidate points until one keeps the minimum
// spacing to all accepted points.
func samplePlacement(rng *rand.Rand, radius, spacing float64, accepted []vec.Vec2) (vec.Vec2, bool) {
	for range ScatterAttempts {
		p := uniformInDisk(rng, radius)
		if farFromAll(p, accepted, spacing) {
			return p, true
		}
	}
	return vec.Vec2{}, false
}

func farFromAll(p vec.Vec2, others []vec.Vec2, dist float64) bool {
	for _, q := range others {
		if p.Sub(q).Length() < dist {
			return false
		}
	}
	return true
}

// uniformInDisk returns a point drawn uniformly from the disk of radius r
// around the origin.  The square root keeps the area density constant.
func uniformInDisk(rng *rand.Rand, r float64) vec.Vec2 {
	rho := r * math.Sqrt(rng.Float64())
	phi := 2 * math.Pi * rng.Float64()
	return vec.Vec2{X: rho * math.Cos(phi), Y: rho * math.Sin(phi)}
}

// ScatterCircle places count copies of template at evenly spaced angles on
// the circle of the given radius.  Copy i sits at angle 360°·i/count, moved
// by independent uniform jitter in [-jitter, jitter] along both axes.  If
// rotate is set, every copy is rotated by an independent uniform angle.
func ScatterCircle(rng *rand.Rand, template Group, radius float64, count int, jitter float64, rotate bool) Group {
	res := make(Group, 0, len(template)*max(count, 0))
	for i := range count {
		phi := 2 * math.Pi * float64(i) / float64(count)
		p := vec.Vec2{X: radius * math.Cos(phi), Y: radius * math.Sin(phi)}
		if jitter != 0 {
			p = p.Add(uniformOffset(rng, jitter))
		}
		res = append(res, placeCopy(rng, template, p, rotate)...)
	}
	return res
}

func placeCopy(rng *rand.Rand, template Group, at vec.Vec2, rotate bool) Group {
	c := template
	if rotate {
		c = c.Rotated(uniformAngle(rng))
	}
	return c.Offset(at)
}
