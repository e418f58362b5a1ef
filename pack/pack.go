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

// Package pack converts line groups into the fixed-capacity representation
// used by the stroke shader.
//
// A shape is drawn on a square quad centred at its origin.  The quad has
// half-size R·[Padding], where R is the bounding size of the shape.  Inside
// the quad, the shader works in unit coordinates, so the segments are
// scaled by 1/(R·Padding) and flipped vertically.  The stroke width is
// divided by R/[ReferenceSize], so that lines keep the same thickness on
// screen no matter how large the shape is.
//
// [Capacity], [Padding] and [ReferenceSize] are shared with the shader and
// must not be changed independently.
package pack

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/lines"
)

const (
	// Padding is the ratio between the quad half-size and the bounding
	// size of the shape.  It leaves room for the stroke around the
	// outermost segments.
	Padding = 1.2

	// ReferenceSize is the bounding size at which the stroke width is used
	// unchanged.
	ReferenceSize = 100
)

var (
	// ErrCapacityExceeded is returned when a shape has more than
	// [Capacity] segments.
	ErrCapacityExceeded = errors.New("too many segments")

	// ErrEmptyShape is returned for shapes without segments.
	ErrEmptyShape = lines.ErrEmptyShape

	// ErrDegenerateShape is returned for shapes whose segments all lie at
	// the origin, so that no scale can be derived.
	ErrDegenerateShape = errors.New("shape has zero extent")

	// ErrInvalidWidth is returned for stroke widths which are not finite
	// and positive.
	ErrInvalidWidth = errors.New("invalid stroke width")
)

// Result is the packed form of one shape.
type Result struct {
	// HalfSize is half the side length of the square quad on which the
	// shape is drawn, in the units of the original shape.
	HalfSize float64

	Settings Settings
}

// Pack normalises g and packs it for the stroke shader.
//
// The width is given in the units used at [ReferenceSize]; the width
// stored in the result is adjusted for the size of g.  Widths which are
// not finite and positive, before or after the adjustment, give
// [ErrInvalidWidth].
func Pack(g lines.Group, width float64) (*Result, error) {
	if len(g) > Capacity {
		return nil, fmt.Errorf("%w: %d segments, capacity %d",
			ErrCapacityExceeded, len(g), Capacity)
	}
	r, err := g.BoundingSize()
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, ErrDegenerateShape
	}
	if !validWidth(width) {
		return nil, fmt.Errorf("%w %g", ErrInvalidWidth, width)
	}

	halfSize := r * Padding
	scale := r / ReferenceSize
	unit := g.Scaled(1 / halfSize).FlippedV()

	buf, n, err := NewBuffer(unit)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HalfSize: halfSize,
		Settings: Settings{
			Lines: *buf,
			Width: float32(width / scale),
			Count: n,
		},
	}
	if !validWidth(float64(res.Settings.Width)) {
		return nil, fmt.Errorf("%w %g for bounding size %g", ErrInvalidWidth, width, r)
	}
	lines.Logger().WithFields(logrus.Fields{
		"segments":  n,
		"bounding":  r,
		"half_size": halfSize,
		"width":     res.Settings.Width,
	}).Debug("pack: shape packed")
	return res, nil
}

func validWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}

// Unpack reconstructs the occupied segments of s.
//
// The result is in the normalised coordinates of the quad, i.e. padded,
// scaled and flipped.  It is not the shape originally passed to [Pack];
// callers who need that must keep it, for example in a
// [seehuhn.de/go/lines/history.Store].
func Unpack(s *Settings) lines.Group {
	n := min(max(s.Count, 0), Capacity)
	g := make(lines.Group, n)
	for i := range n {
		rec := s.Lines[i]
		g[i] = lines.L(float64(rec[0]), float64(rec[1]), float64(rec[2]), float64(rec[3]))
	}
	return g
}

// Denormalize maps segments in quad coordinates back to the coordinates of
// the original shape.  For a result of [Pack], Denormalize(Unpack(...))
// gives the original shape up to float32 rounding.
func (r *Result) Denormalize(g lines.Group) lines.Group {
	return g.FlippedV().Scaled(r.HalfSize)
}
