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

// Package testcases holds a catalog of named shapes used to check the
// packer and the preview rasteriser, and to generate reference images.
package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/lines"
)

// TestCase defines a single shape to render.
type TestCase struct {
	Name  string  // lowercase a-z, 0-9 and _ only
	Size  int     // canvas side length in pixels
	Width float64 // stroke width, in units of the shape
	Seed  uint64  // seed for shapes with random placement

	// Build constructs the shape.  Deterministic builders ignore rng.
	Build func(rng *rand.Rand) lines.Group
}

// Shape builds the shape of tc from its seed.
// Calling Shape twice gives equal groups.
func (tc TestCase) Shape() lines.Group {
	return tc.Build(NewRand(tc.Seed))
}

// NewRand returns the random source used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fixed wraps a deterministic shape as a builder.
func fixed(g lines.Group) func(*rand.Rand) lines.Group {
	return func(*rand.Rand) lines.Group { return g.Clone() }
}
