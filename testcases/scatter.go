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

package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/font"
)

var scatterCases = []TestCase{
	{
		Name:  "dots",
		Size:  128,
		Width: 1,
		Seed:  10,
		Build: func(rng *rand.Rand) lines.Group {
			dot := lines.RegularPolygon(2, 4)
			return lines.Scatter(rng, dot, 40, 20, false)
		},
	},
	{
		Name:  "rotated_letters",
		Size:  256,
		Width: 1,
		Seed:  11,
		Build: func(rng *rand.Rand) lines.Group {
			return lines.Scatter(rng, font.Glyph('X'), 60, 12, true)
		},
	},
	{
		Name:  "debris_field",
		Size:  256,
		Width: 1.5,
		Seed:  12,
		Build: func(rng *rand.Rand) lines.Group {
			return lines.ScatterCircle(rng, lines.RegularPolygon(6, 3), 80, 10, 1, true)
		},
	},
	{
		Name:  "crowded",
		Size:  128,
		Width: 1,
		Seed:  13,
		Build: func(rng *rand.Rand) lines.Group {
			// More copies than fit; some slots stay empty.
			return lines.Scatter(rng, lines.Rectangle(8, 8), 10, 30, false)
		},
	},
}
