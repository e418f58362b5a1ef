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
	"seehuhn.de/go/lines/font"
)

var textCases = []TestCase{
	{
		Name:  "letter_a",
		Size:  64,
		Width: 0.8,
		Build: fixed(font.Text("A")),
	},
	{
		Name:  "word",
		Size:  256,
		Width: 1,
		Build: fixed(font.Text("STROKE").Centered()),
	},
	{
		Name:  "digits",
		Size:  256,
		Width: 1,
		Build: fixed(font.Text("0123456789").Centered()),
	},
	{
		Name:  "lower_case",
		Size:  256,
		Width: 1,
		Build: fixed(font.Text("hello").Centered()),
	},
	{
		Name:  "punctuation",
		Size:  256,
		Width: 1,
		Build: fixed(font.Text("(A+B)=C?").Centered()),
	},
	{
		Name:  "large_text",
		Size:  256,
		Width: 10,
		Build: fixed(font.Text("GO").Scaled(20).Centered()),
	},
}
