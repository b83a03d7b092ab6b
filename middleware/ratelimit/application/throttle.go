package application

import (
	"time"

	"trends-wordcloud/middleware/ratelimit/domain"
)

const defaultMinRetryAfter = time.Second

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Throttle consulta o bucket do cliente e traduz a espera em Retry-After.
// Sem Buckets tudo passa.
type Throttle struct {
	Buckets domain.Buckets
	// MinRetryAfter é o menor Retry-After anunciado (padrão 1s).
	MinRetryAfter time.Duration
	Now           func() time.Time
}

func (t Throttle) Decide(key domain.ClientKey) Decision {
	if t.Buckets == nil {
		return Decision{Allowed: true}
	}
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}

	v := t.Buckets.Take(key, now())
	if v.Allowed {
		return Decision{Allowed: true}
	}

	floor := t.MinRetryAfter
	if floor <= 0 {
		floor = defaultMinRetryAfter
	}
	return Decision{RetryAfter: max(v.Wait, floor)}
}
