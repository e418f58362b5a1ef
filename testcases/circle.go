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
)

var circleCases = []TestCase{
	{
		Name:  "octagon",
		Size:  64,
		Width: 2,
		Build: fixed(lines.Circle(20, 8)),
	},
	{
		Name:  "half_octagon",
		Size:  64,
		Width: 2,
		Build: fixed(lines.Circle(20, 4)),
	},
	{
		Name:  "wound_twice",
		Size:  64,
		Width: 2,
		Build: fixed(lines.Circle(20, 16)),
	},
	{
		Name:  "jittered",
		Size:  64,
		Width: 2,
		Seed:  1,
		Build: func(rng *rand.Rand) lines.Group {
			return lines.JitteredCircle(rng, 20, 8, 3)
		},
	},
	{
		Name:  "jittered_large",
		Size:  256,
		Width: 4,
		Seed:  2,
		Build: func(rng *rand.Rand) lines.Group {
			return lines.JitteredCircle(rng, 400, 8, 40)
		},
	},
}
