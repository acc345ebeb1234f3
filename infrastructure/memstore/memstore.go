// Package memstore provides an in-process record store guarded by a RWMutex.
// Records are kept in ascending id order and ids come from a high-water mark,
// so a deleted id is never handed out again.
package memstore

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"time"
)

var (
	ErrNotFound    = errors.New("memstore: record not found")
	ErrDuplicateID = errors.New("memstore: duplicate id")
	ErrIDExhausted = errors.New("memstore: no ids left")
)

// Adapter teaches the store how to build, patch and filter one record type.
type Adapter[T any, C any, U any, F any] struct {
	// ID returns the record's id.
	ID func(rec T) int
	// New builds a record from a create payload.
	New func(id int, payload C, now time.Time) T
	// Apply patches rec and reports whether anything changed.
	Apply func(rec T, payload U, now time.Time) (T, bool)
	// Match reports whether rec passes filter. Nil matches everything.
	Match func(rec T, filter F) bool
	// ExplicitID returns a caller chosen id, if the payload carries one.
	ExplicitID func(payload C) (int, bool)
}

// Window returns the bounds of a page over n ordered records.
type Window func(n int) (start int, end int)

type Store[T any, C any, U any, F any] struct {
	mu      sync.RWMutex
	adapter Adapter[T, C, U, F]
	records []T
	lastID  int
	now     func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func New[T any, C any, U any, F any](adapter Adapter[T, C, U, F], opts ...Option) *Store[T, C, U, F] {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T, C, U, F]{
		adapter: adapter,
		records: make([]T, 0),
		now:     o.now,
	}
}

func (s *Store[T, C, U, F]) index(id int) (int, bool) {
	return slices.BinarySearchFunc(s.records, id, func(rec T, target int) int {
		return cmp.Compare(s.adapter.ID(rec), target)
	})
}

func (s *Store[T, C, U, F]) matching(filter F) []T {
	if s.adapter.Match == nil {
		return s.records
	}
	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if s.adapter.Match(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store[T, C, U, F]) List(ctx context.Context, filter F, window Window) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matching(filter)
	start, end := window(len(matched))
	return slices.Clone(matched[start:end]), nil
}

func (s *Store[T, C, U, F]) Count(ctx context.Context, filter F) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.matching(filter)), nil
}

func (s *Store[T, C, U, F]) Get(ctx context.Context, id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return s.records[i], nil
}

func (s *Store[T, C, U, F]) Create(ctx context.Context, payload C) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	id := s.lastID + 1
	explicit, hasExplicit := 0, false
	if s.adapter.ExplicitID != nil {
		explicit, hasExplicit = s.adapter.ExplicitID(payload)
	}
	switch {
	case hasExplicit:
		if _, exists := s.index(explicit); exists {
			return zero, ErrDuplicateID
		}
		id = explicit
	case s.lastID == math.MaxInt:
		return zero, ErrIDExhausted
	}

	rec := s.adapter.New(id, payload, s.now())
	i, _ := s.index(id)
	s.records = slices.Insert(s.records, i, rec)
	s.lastID = max(s.lastID, id)

	return rec, nil
}

// Update applies payload to the record in one step under the write lock.
func (s *Store[T, C, U, F]) Update(ctx context.Context, id int, payload U) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	rec, changed := s.adapter.Apply(s.records[i], payload, s.now())
	if changed {
		s.records[i] = rec
	}
	return s.records[i], nil
}

func (s *Store[T, C, U, F]) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index(id)
	if !ok {
		return ErrNotFound
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}
