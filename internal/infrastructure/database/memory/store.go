// Package memory implements the entity stores in process memory. Every store
// is safe for concurrent use: one mutex per store serialises mutations, so a
// find-then-mutate sequence can never interleave with another writer.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var errRecordNotFound = errors.New("record not found")

// Entity is what a Store can hold: a record that knows its ID and can copy
// itself, so stored state never aliases caller-owned values.
type Entity[E any] interface {
	EntityID() int64
	AssignID(id int64)
	Clone() E
}

type Store[E Entity[E]] struct {
	mu     sync.RWMutex
	items  []E
	nextID int64
}

func NewStore[E Entity[E]]() *Store[E] {
	return &Store[E]{nextID: 1}
}

// Seed loads records that already carry IDs and moves the ID generator past
// the highest one.
func (s *Store[E]) Seed(records ...E) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.items = append(s.items, rec.Clone())
		if id := rec.EntityID(); id >= s.nextID {
			s.nextID = id + 1
		}
	}
}

func (s *Store[E]) Insert(_ context.Context, rec E) E {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := rec.Clone()
	stored.AssignID(s.nextID)
	s.nextID++
	s.items = append(s.items, stored)
	return stored.Clone()
}

func (s *Store[E]) Replace(_ context.Context, rec E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(rec.EntityID())
	if i < 0 {
		return errRecordNotFound
	}
	s.items[i] = rec.Clone()
	return nil
}

func (s *Store[E]) FindByID(_ context.Context, id int64) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero E
		return zero, errRecordNotFound
	}
	return s.items[i].Clone(), nil
}

func (s *Store[E]) FindAll(_ context.Context) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, len(s.items))
	for i, rec := range s.items {
		out[i] = rec.Clone()
	}
	return out
}

func (s *Store[E]) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errRecordNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *Store[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf must be called with the lock held.
func (s *Store[E]) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(rec E) bool {
		return rec.EntityID() == id
	})
}
