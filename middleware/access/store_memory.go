package access

import (
	"context"
	"sync"
)

type Counters struct {
	Requests int64
	Bytes    int64
	ByClass  map[string]int64
}

// MemoryStore acumula contadores em memória, sem expiração.
// Útil em desenvolvimento e nos testes.
type MemoryStore struct {
	mu     sync.Mutex
	total  Counters
	byPath map[string]Counters
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		total:  Counters{ByClass: make(map[string]int64)},
		byPath: make(map[string]Counters),
	}
}

func (s *MemoryStore) Record(_ context.Context, ev Event) error {
	class := ev.StatusClass()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = add(s.total, ev, class)
	s.byPath[ev.Path] = add(s.byPath[ev.Path], ev, class)
	return nil
}

func add(c Counters, ev Event, class string) Counters {
	if c.ByClass == nil {
		c.ByClass = make(map[string]int64)
	}
	c.Requests++
	c.Bytes += ev.Bytes
	c.ByClass[class]++
	return c
}

func (s *MemoryStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.total)
}

func (s *MemoryStore) ByPath() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byPath))
	for k, v := range s.byPath {
		out[k] = clone(v)
	}
	return out
}

func clone(c Counters) Counters {
	classes := make(map[string]int64, len(c.ByClass))
	for k, v := range c.ByClass {
		classes[k] = v
	}
	c.ByClass = classes
	return c
}
