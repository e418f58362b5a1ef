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

// Package font implements a small vector font where every glyph is made
// of straight line segments.
//
// Glyphs are centred near the origin with a nominal height of [Height]
// units, y pointing up.  [Text] lays glyphs out left to right with a fixed
// advance of [Advance] units.
package font

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines"
)

const (
	// Advance is the horizontal distance between consecutive glyphs.
	Advance = 10

	// Height is the nominal glyph height.
	Height = 8
)

// Fold maps s to the characters covered by the glyph table: accents are
// stripped and letters are upper-cased.  "Café" becomes "CAFE".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Upper(language.Und).String(stripped)
}

// Glyph returns the segments for r.  Characters without a glyph give an
// empty group.  The returned group may be modified by the caller.
func Glyph(r rune) lines.Group {
	return lookup(foldRune(r)).Clone()
}

// Supported reports whether r has a glyph, possibly after folding.
// The space character is supported and has no segments.
func Supported(r rune) bool {
	_, ok := table[foldRune(r)]
	return ok
}

// Runes returns all characters of the glyph table in increasing order.
func Runes() []rune {
	rr := make([]rune, 0, len(table))
	for r := range table {
		rr = append(rr, r)
	}
	slices.Sort(rr)
	return rr
}

// Text lays out the glyphs of s from left to right.  The glyph of the i-th
// character of s is moved right by i·[Advance] units.  Each character is
// looked up as by [Glyph], so characters without a glyph leave a gap.
func Text(s string) lines.Group {
	res := lines.Group{}
	i := 0
	for _, r := range s {
		res = append(res, lookup(foldRune(r)).Offset(vec.Vec2{X: Advance * float64(i)})...)
		i++
	}
	return res
}

// Width returns the horizontal distance covered by the advances of s.
func Width(s string) float64 {
	return Advance * float64(utf8.RuneCountInString(s))
}

// foldRune folds a single character.  If folding expands r into several
// characters, utf8.RuneError is returned, which has no glyph.
func foldRune(r rune) rune {
	if _, ok := table[r]; ok {
		return r
	}
	folded := Fold(string(r))
	if utf8.RuneCountInString(folded) != 1 {
		return utf8.RuneError
	}
	fr, _ := utf8.DecodeRuneInString(folded)
	return fr
}

func lookup(r rune) lines.Group {
	return table[r]
}
