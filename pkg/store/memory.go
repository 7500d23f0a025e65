package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory wheel store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	wheels map[string]*Wheel
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{wheels: make(map[string]*Wheel)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Wheel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wheels[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *w
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context, owner string) ([]*Wheel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Wheel
	for _, w := range s.wheels {
		if owner != "" && w.Owner != owner {
			continue
		}
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, w *Wheel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.UpdatedAt = time.Now().UTC()
	cp := *w
	s.wheels[w.ID] = &cp
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.wheels, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
