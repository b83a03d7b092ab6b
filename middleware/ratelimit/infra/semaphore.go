package infra

import (
	"context"
	"sync"
)

// Semaphore implementa domain.Slots sobre um channel com buffer.
type Semaphore struct {
	ch chan struct{}
}

func NewSemaphore(n int) *Semaphore {
	return &Semaphore{ch: make(chan struct{}, n)}
}

func (s *Semaphore) Acquire(ctx context.Context) (func(), bool) {
	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		return nil, false
	}
	var once sync.Once
	return func() { once.Do(func() { <-s.ch }) }, true
}

func (s *Semaphore) InUse() int { return len(s.ch) }
func (s *Semaphore) Cap() int   { return cap(s.ch) }
