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

// Package stroke connects shape generation to a rendering backend.
//
// A [Renderer] packs every submitted shape, asks the injected [Assets] for
// a quad and a material, and remembers the original shape in a
// [history.Store].  Assets are allocated afresh on every submission and
// never mutated, so earlier allocations become unused; reclaiming them is
// up to the owner of the pool.
package stroke

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lines"
	"seehuhn.de/go/lines/history"
	"seehuhn.de/go/lines/pack"
)

// AssetID identifies an allocation in an [Assets] pool.
type AssetID uint64

// Assets is the host's pool of GPU resources.
type Assets interface {
	// AddQuad allocates a square quad with the given half-size, centred
	// at the origin.
	AddQuad(halfSize float64) (AssetID, error)

	// AddMaterial allocates a stroke material with the given settings.
	AddMaterial(s *pack.Settings) (AssetID, error)
}

// Handle refers to the assets allocated for one submission.
type Handle struct {
	Quad     AssetID
	Material AssetID

	// HalfSize is the half-size of the quad, in shape units.
	HalfSize float64
}

// Debris is one piece of a destroyed shape.
type Debris struct {
	// Shape is a single segment, centred at the origin.
	Shape lines.Group

	// Position is where the centre of the piece was in the original
	// shape's coordinates.
	Position vec.Vec2
}

// Renderer submits shapes to an asset pool and keeps their history.
type Renderer struct {
	assets Assets
	store  *history.Store
	log    *logrus.Logger
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithLogger makes the renderer log to l instead of [lines.Logger].
func WithLogger(l *logrus.Logger) Option {
	return func(r *Renderer) {
		r.log = l
	}
}

// NewRenderer returns a renderer allocating from assets.
// If store is nil, a new store is created.
func NewRenderer(assets Assets, store *history.Store, opts ...Option) *Renderer {
	if store == nil {
		store = history.New()
	}
	r := &Renderer{
		assets: assets,
		store:  store,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) logger() *logrus.Logger {
	if r.log != nil {
		return r.log
	}
	return lines.Logger()
}

// Store returns the history store used by r.
func (r *Renderer) Store() *history.Store {
	return r.store
}

// Submit packs g with the given stroke width, allocates a quad and a
// material for it, and records g as the current shape of id.
//
// Submit is used both when an object is created and whenever its shape
// changes.  If packing or allocation fails, the history is left unchanged.
func (r *Renderer) Submit(id history.ID, g lines.Group, width float64) (Handle, error) {
	res, err := pack.Pack(g, width)
	if err != nil {
		r.logger().WithFields(logrus.Fields{
			"id":       id,
			"segments": len(g),
		}).WithError(err).Warn("stroke: shape rejected")
		return Handle{}, fmt.Errorf("submit %s: %w", id, err)
	}

	quad, err := r.assets.AddQuad(res.HalfSize)
	if err != nil {
		return Handle{}, fmt.Errorf("submit %s: quad: %w", id, err)
	}
	mat, err := r.assets.AddMaterial(&res.Settings)
	if err != nil {
		return Handle{}, fmt.Errorf("submit %s: material: %w", id, err)
	}

	r.store.Submit(id, g)
	r.logger().WithFields(logrus.Fields{
		"id":       id,
		"quad":     quad,
		"material": mat,
	}).Debug("stroke: shape submitted")

	return Handle{Quad: quad, Material: mat, HalfSize: res.HalfSize}, nil
}

// CurrentShape returns the shape most recently submitted for id.
func (r *Renderer) CurrentShape(id history.ID) (lines.Group, error) {
	return r.store.Get(id)
}

// Destroy removes id from the history and returns its last shape split
// into single-segment pieces.
func (r *Renderer) Destroy(id history.ID) ([]Debris, error) {
	g, err := r.store.Take(id)
	if err != nil {
		return nil, err
	}

	pieces, centers := g.Pieces()
	debris := make([]Debris, len(pieces))
	for i := range pieces {
		debris[i] = Debris{Shape: pieces[i], Position: centers[i]}
	}
	return debris, nil
}
