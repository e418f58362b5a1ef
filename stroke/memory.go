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

package stroke

import (
	"fmt"
	"sync"

	"seehuhn.de/go/lines/pack"
)

// MemoryPool is an append-only [Assets] implementation which keeps
// everything in memory.  It is used for tests and for CPU previews.
type MemoryPool struct {
	mu        sync.Mutex
	quads     []float64
	materials []pack.Settings
}

var _ Assets = (*MemoryPool)(nil)

// AddQuad implements [Assets].
func (p *MemoryPool) AddQuad(halfSize float64) (AssetID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quads = append(p.quads, halfSize)
	return AssetID(len(p.quads) - 1), nil
}

// AddMaterial implements [Assets].  The settings are copied.
func (p *MemoryPool) AddMaterial(s *pack.Settings) (AssetID, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.materials = append(p.materials, *s)
	return AssetID(len(p.materials) - 1), nil
}

// Quad returns the half-size of the quad with the given id.
func (p *MemoryPool) Quad(id AssetID) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if uint64(id) >= uint64(len(p.quads)) {
		return 0, fmt.Errorf("quad %d not found", id)
	}
	return p.quads[id], nil
}

// Material returns a copy of the material with the given id.
func (p *MemoryPool) Material(id AssetID) (*pack.Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if uint64(id) >= uint64(len(p.materials)) {
		return nil, fmt.Errorf("material %d not found", id)
	}
	s := p.materials[id]
	return &s, nil
}

// Len returns the number of quads and materials allocated so far.
func (p *MemoryPool) Len() (quads, materials int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.quads), len(p.materials)
}
