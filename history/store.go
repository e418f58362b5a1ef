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

// Package history remembers the last shape submitted for each object.
//
// The packed form of a shape is normalised for the shader and cannot be
// turned back into the original coordinates.  A [Store] keeps the original
// so that, for example, a destroyed object can be split into its segments.
// Entries live until the owner removes them; nothing is collected
// automatically.
package history

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"seehuhn.de/go/lines"
)

// ErrUnknownID is returned for identities without a stored shape.
var ErrUnknownID = errors.New("unknown id")

// ID identifies the object owning a shape.
type ID = uuid.UUID

// NewID returns a fresh random identity.
func NewID() ID {
	return uuid.New()
}

// Store maps identities to the last shape submitted for them.
// A Store is safe for concurrent use.  The zero value is ready to use.
type Store struct {
	mu     sync.RWMutex
	shapes map[ID]lines.Group
}

// New returns an empty store.
func New() *Store {
	return &Store{shapes: make(map[ID]lines.Group)}
}

// Submit records g as the current shape of id, replacing any earlier one.
// The store keeps its own copy of g.
func (s *Store) Submit(id ID, g lines.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shapes == nil {
		s.shapes = make(map[ID]lines.Group)
	}
	s.shapes[id] = g.Clone()
}

// Get returns the most recently submitted shape of id.
// If there is none, the error wraps [ErrUnknownID].
func (s *Store) Get(id ID) (lines.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.shapes[id]
	if !ok {
		return nil, fmt.Errorf("history: %w %s", ErrUnknownID, id)
	}
	return g.Clone(), nil
}

// Remove deletes the entry for id and reports whether there was one.
func (s *Store) Remove(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.shapes[id]
	delete(s.shapes, id)
	return ok
}

// Take removes the entry for id and returns its shape.  Of several
// concurrent calls for the same id, only one succeeds; the others get an
// error wrapping [ErrUnknownID].
func (s *Store) Take(id ID) (lines.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.shapes[id]
	if !ok {
		return nil, fmt.Errorf("history: %w %s", ErrUnknownID, id)
	}
	delete(s.shapes, id)
	return g, nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shapes)
}

// IDs returns the stored identities in ascending byte order.
func (s *Store) IDs() []ID {
	s.mu.RLock()
	ids := make([]ID, 0, len(s.shapes))
	for id := range s.shapes {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.SortFunc(ids, func(a, b ID) int {
		return slices.Compare(a[:], b[:])
	})
	return ids
}
