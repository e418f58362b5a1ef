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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines"
)

var polygonCases = []TestCase{
	{
		Name:  "single_line",
		Size:  64,
		Width: 4,
		Build: fixed(lines.Single(lines.L(-20, -10, 20, 10))),
	},
	{
		Name:  "triangle",
		Size:  64,
		Width: 2,
		Build: fixed(lines.ContinuousClosed([]vec.Vec2{
			pt(-10, -5), pt(10, -5), pt(0, 8),
		})),
	},
	{
		Name:  "square",
		Size:  64,
		Width: 3,
		Build: fixed(lines.Rectangle(30, 30)),
	},
	{
		Name:  "wide_rectangle",
		Size:  128,
		Width: 2,
		Build: fixed(lines.Rectangle(80, 10)),
	},
	{
		Name:  "hexagon",
		Size:  64,
		Width: 2,
		Build: fixed(lines.RegularPolygon(20, 6)),
	},
	{
		Name:  "zigzag",
		Size:  128,
		Width: 1.5,
		Build: fixed(lines.Continuous([]vec.Vec2{
			pt(-40, -10), pt(-30, 10), pt(-20, -10), pt(-10, 10), pt(0, -10),
			pt(10, 10), pt(20, -10), pt(30, 10), pt(40, -10),
		})),
	},
	{
		Name:  "off_centre",
		Size:  64,
		Width: 2,
		Build: fixed(lines.Rectangle(10, 10).Offset(pt(15, 15))),
	},
	{
		Name:  "rotated_square",
		Size:  64,
		Width: 2,
		Build: fixed(lines.Rectangle(30, 30).Rotated(30)),
	},
	{
		Name:  "capacity",
		Size:  256,
		Width: 0.5,
		Build: fixed(lines.RegularPolygon(50, 256)),
	},
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
