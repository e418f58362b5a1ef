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

package font

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines"
)

// Glyph outlines on an 8×8 cell: x from -4 to 4, y from -4 (baseline) to 4,
// y pointing up.  Each glyph is a list of polylines; a polyline ending at
// its first point is closed.
var glyphStrokes = map[rune][][]float64{
	'A': {{-4, -4, 0, 4, 4, -4}, {-3, 0, 3, 0}},
	'B': {
		{-4, -4, -4, 4, 2, 4, 3, 2, 2, 0, -4, 0},
		{2, 0, 4, -2, 2, -4, -4, -4},
	},
	'C': {{4, 4, -2, 4, -4, 2, -4, -2, -2, -4, 4, -4}},
	'D': {{-4, -4, -4, 4, 2, 4, 4, 2, 4, -2, 2, -4, -4, -4}},
	'E': {{3, -4, -4, -4, -4, 4, 3, 4}, {-4, 0, 2, 0}},
	'F': {{-4, -4, -4, 4, 3, 4}, {-4, 0, 2, 0}},
	'G': {{4, 4, -4, 3, -4, -3, 4, -4, 4, 0, 0, 0}},
	'H': {{-4, 4, -4, -4}, {4, 4, 4, -4}, {-4, 0, 4, 0}},
	'I': {{0, -4, 0, 4}},
	'J': {{4, 4, 4, -2, 2, -4, -2, -4, -4, -2}},
	'K': {{-4, 4, -4, -4}, {4, 4, -4, 0, 4, -4}},
	'L': {{-4, 4, -4, -4, 2, -4}},
	'M': {{-4, -4, -2, 4, 0, 0, 2, 4, 4, -4}},
	'N': {{-4, -4, -4, 4, 4, -4, 4, 4}},
	'O': {{-2, -4, 2, -4, 4, 0, 2, 4, -2, 4, -4, 0, -2, -4}},
	'P': {{-3, -4, -3, 4, 2, 4, 3, 2, 2, 0, -3, 0}},
	'Q': {{-2, -4, 2, -4, 4, 0, 2, 4, -2, 4, -4, 0, -2, -4}, {1, -2, 4, -4}},
	'R': {{-3, -4, -3, 4, 2, 4, 3, 2, 2, 0, -3, 0, 3, -4}},
	'S': {{3, 4, -4, 4, -4, 0, 3, 0, 3, -4, -4, -4}},
	'T': {{0, -4, 0, 4}, {-4, 4, 4, 4}},
	'U': {{-4, 4, -4, -2, -2, -4, 2, -4, 4, -2, 4, 4}},
	'V': {{-3, 4, 0, -4, 3, 4}},
	'W': {{-4, 4, -2, -4, 0, 0, 2, -4, 4, 4}},
	'X': {{-4, 4, 4, -4}, {4, 4, -4, -4}},
	'Y': {{-3, 4, 0, 0, 3, 4}, {0, 0, 0, -4}},
	'Z': {{-4, 4, 4, 4, -4, -4, 4, -4}},

	'0': {{-2, -4, 2, -4, 4, 0, 2, 4, -2, 4, -4, 0, -2, -4}, {3, 2, -3, -2}},
	'1': {{-2, 2, 0, 4, 0, -4}, {-3, -4, 3, -4}},
	'2': {{-4, 2, -2, 4, 2, 4, 4, 2, -4, -4, 4, -4}},
	'3': {{-4, 4, 3, 4, 4, 2, 3, 0, 4, -2, 3, -4, -4, -4}, {-2, 0, 3, 0}},
	'4': {{2, -4, 2, 4, -4, -1, 4, -1}},
	'5': {{3, 4, -4, 4, -4, 0, 3, 0, 4, -2, 3, -4, -4, -4}},
	'6': {{3, 4, -2, 4, -4, 0, -4, -4, 4, -4, 4, 0, -4, 0}},
	'7': {{-4, 4, 4, 4, -1, -4}},
	'8': {
		{-3, 0, -4, 2, -3, 4, 3, 4, 4, 2, 3, 0, -3, 0},
		{-3, 0, -4, -2, -3, -4, 3, -4, 4, -2, 3, 0},
	},
	'9': {{4, 0, -4, 0, -4, 4, 4, 4, 4, -4, -3, -4}},

	' ':  {},
	'.':  {{0, -4, 0, -3.5}},
	',':  {{0, -3, -1, -5}},
	':':  {{0, 2, 0, 1.5}, {0, -2, 0, -2.5}},
	'!':  {{0, 4, 0, -1.5}, {0, -3.5, 0, -4}},
	'?':  {{-3, 3, -2, 4, 2, 4, 3, 3, 3, 1, 0, 0, 0, -1.5}, {0, -3.5, 0, -4}},
	'-':  {{-2, 0, 2, 0}},
	'+':  {{-2, 0, 2, 0}, {0, 2, 0, -2}},
	'/':  {{-4, -4, 4, 4}},
	'\'': {{0, 4, 0, 2}},
	'"':  {{-1, 4, -1, 2}, {1, 4, 1, 2}},
	'(':  {{1, 4, -1, 2, -1, -2, 1, -4}},
	')':  {{-1, 4, 1, 2, 1, -2, -1, -4}},
	'=':  {{-2, 1, 2, 1}, {-2, -1, 2, -1}},
	'_':  {{-4, -4, 4, -4}},
	'*':  {{-2, 2, 2, -2}, {2, 2, -2, -2}, {0, 3, 0, -3}},
	'#':  {{-1, 3, -1, -3}, {1, 3, 1, -3}, {-3, 1, 3, 1}, {-3, -1, 3, -1}},
}

// table holds the segment form of every glyph.  It is built once and never
// modified afterwards.
var table = buildTable()

func buildTable() map[rune]lines.Group {
	t := make(map[rune]lines.Group, len(glyphStrokes))
	for r, strokes := range glyphStrokes {
		g := lines.Group{}
		for _, coords := range strokes {
			pts := make([]vec.Vec2, len(coords)/2)
			for i := range pts {
				pts[i] = vec.Vec2{X: coords[2*i], Y: coords[2*i+1]}
			}
			g = append(g, lines.Continuous(pts)...)
		}
		t[r] = g
	}
	return t
}
