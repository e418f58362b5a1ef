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

package history

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"seehuhn.de/go/lines"
)

var (
	shapeA = lines.Rectangle(2, 2)
	shapeB = lines.Circle(5, 8)
)

func TestLastSubmitWins(t *testing.T) {
	s := New()
	id := NewID()
	s.Submit(id, shapeA)
	s.Submit(id, shapeB)
	got, err := s.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, shapeB) {
		t.Errorf("Get returned %v, want shape B", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestUnknownID(t *testing.T) {
	var s Store // zero value
	id := NewID()
	g, err := s.Get(id)
	if !errors.Is(err, ErrUnknownID) {
		t.Errorf("got %v, want ErrUnknownID", err)
	}
	if g != nil {
		t.Errorf("Get returned a shape for an unknown id: %v", g)
	}

	s.Submit(id, shapeA)
	if !s.Remove(id) {
		t.Error("Remove reported no entry")
	}
	if s.Remove(id) {
		t.Error("second Remove reported an entry")
	}
	if _, err := s.Get(id); !errors.Is(err, ErrUnknownID) {
		t.Errorf("after Remove: got %v, want ErrUnknownID", err)
	}
}

func TestStoredShapesAreCopies(t *testing.T) {
	s := New()
	id := NewID()
	g := shapeA.Clone()
	s.Submit(id, g)
	g[0].A.X = 99

	got, _ := s.Get(id)
	if got[0].A.X == 99 {
		t.Error("Submit did not copy the shape")
	}
	got[0].A.X = 77
	again, _ := s.Get(id)
	if again[0].A.X == 77 {
		t.Error("Get returned shared storage")
	}
}

func TestEmptyShapeIsStored(t *testing.T) {
	s := New()
	id := NewID()
	s.Submit(id, nil)
	g, err := s.Get(id)
	if err != nil {
		t.Fatalf("empty shape not recorded: %v", err)
	}
	if len(g) != 0 {
		t.Errorf("got %v", g)
	}
}

func TestIDsSorted(t *testing.T) {
	s := New()
	for range 20 {
		s.Submit(NewID(), shapeA)
	}
	ids := s.IDs()
	if len(ids) != 20 {
		t.Fatalf("got %d ids", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if slices.Compare(ids[i-1][:], ids[i][:]) >= 0 {
			t.Fatal("ids not sorted")
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	ids := make([]ID, 8)
	for i := range ids {
		ids[i] = NewID()
	}
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				s.Submit(id, lines.Circle(float64(i+j+1), 8))
				if _, err := s.Get(id); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if s.Len() != len(ids) {
		t.Errorf("Len = %d, want %d", s.Len(), len(ids))
	}
}

func TestTakeOnce(t *testing.T) {
	s := New()
	id := NewID()
	s.Submit(id, shapeA)

	const n = 16
	var wg sync.WaitGroup
	results := make(chan lines.Group, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := s.Take(id)
			if err == nil {
				results <- g
			} else if !errors.Is(err, ErrUnknownID) {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	close(results)

	var taken []lines.Group
	for g := range results {
		taken = append(taken, g)
	}
	if len(taken) != 1 {
		t.Fatalf("%d calls took the entry, want 1", len(taken))
	}
	if !slices.Equal(taken[0], shapeA) {
		t.Errorf("took %v, want %v", taken[0], shapeA)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after Take", s.Len())
	}
}
