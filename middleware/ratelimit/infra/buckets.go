package infra

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"trends-wordcloud/middleware/ratelimit/domain"
)

// BucketStore mantém um token bucket (golang.org/x/time/rate) por cliente.
// Clientes sem requisições há mais de idleTTL são descartados por Sweep.
type BucketStore struct {
	mu      sync.Mutex
	clients map[domain.ClientKey]*client

	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	sweepEvery time.Duration
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type BucketOption func(*BucketStore)

func WithIdleTTL(d time.Duration) BucketOption {
	return func(s *BucketStore) { s.idleTTL = d }
}

// WithSweepEvery define o intervalo de StartSweeper; 0 desliga.
func WithSweepEvery(d time.Duration) BucketOption {
	return func(s *BucketStore) { s.sweepEvery = d }
}

func NewBucketStore(rps float64, burst int, opts ...BucketOption) *BucketStore {
	s := &BucketStore{
		clients:    make(map[domain.ClientKey]*client),
		limit:      rate.Limit(rps),
		burst:      burst,
		idleTTL:    15 * time.Minute,
		sweepEvery: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BucketStore) RPS() float64 { return float64(s.limit) }
func (s *BucketStore) Burst() int   { return s.burst }

func (s *BucketStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Take implementa domain.Buckets. Quando não há token a reserva é desfeita,
// então uma requisição negada não atrasa as seguintes.
func (s *BucketStore) Take(key domain.ClientKey, now time.Time) domain.Verdict {
	s.mu.Lock()
	c, ok := s.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now
	lim := c.lim
	s.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return domain.Verdict{}
	}
	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return domain.Verdict{Wait: d}
	}
	return domain.Verdict{Allowed: true}
}

// Sweep remove clientes inativos e devolve quantos saíram.
func (s *BucketStore) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, c := range s.clients {
		if c.lastSeen.Before(cutoff) {
			delete(s.clients, k)
			removed++
		}
	}
	return removed
}

// StartSweeper roda Sweep a cada sweepEvery até ctx encerrar.
func (s *BucketStore) StartSweeper(ctx context.Context) {
	if s.sweepEvery <= 0 {
		return
	}

	t := time.NewTicker(s.sweepEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				s.Sweep(now)
			}
		}
	}()
}
