// Package memstore provides an in-memory, mutex-guarded collection of records
// keyed by identifier. Records are kept in insertion order with the newest first.
package memstore

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("memstore: record not found")
	ErrDuplicate = errors.New("memstore: duplicate id")
)

// Store holds records of type T. Reads return copies of the stored values, so
// callers cannot mutate the collection without going through the Store.
type Store[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) string
	order []string
	byID  map[string]T
}

// New creates an empty Store. idOf extracts the identifier of a record.
func New[T any](idOf func(T) string) *Store[T] {
	return &Store[T]{
		idOf: idOf,
		byID: make(map[string]T),
	}
}

// Seed appends records in the given order. Used to load fixtures.
func (s *Store[T]) Seed(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		id := s.idOf(r)
		if _, ok := s.byID[id]; ok {
			continue
		}
		s.byID[id] = r
		s.order = append(s.order, id)
	}
}

// Insert adds a record at the front of the collection.
func (s *Store[T]) Insert(r T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(r)
	if _, ok := s.byID[id]; ok {
		return ErrDuplicate
	}
	s.byID[id] = r
	s.order = append([]string{id}, s.order...)
	return nil
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	return r, ok
}

// Update applies fn to the stored record in place and returns the result.
func (s *Store[T]) Update(id string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	r, ok := s.byID[id]
	if !ok {
		return zero, ErrNotFound
	}

	updated, err := fn(r)
	if err != nil {
		return zero, err
	}
	s.byID[id] = updated
	return updated, nil
}

// Delete removes the record with the given id.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns every record matching keep, in collection order.
// A nil keep returns all records.
func (s *Store[T]) List(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		r := s.byID[id]
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the first record matching match.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if r := s.byID[id]; match(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Page slices records into a window. A non-positive limit returns everything from offset.
func Page[T any](records []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []T{}
	}
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end]
}
