package ratelimit

import (
	"net/http"
	"time"

	"trends-wordcloud/middleware/ratelimit/application"
	"trends-wordcloud/middleware/ratelimit/domain"
	"trends-wordcloud/middleware/ratelimit/infra"
)

// ConcurrencyOptions limita quantas requisições são atendidas ao mesmo tempo.
// Max=1 serializa o atendimento; Max<=0 desliga o limite.
// AcquireTimeout<=0 espera por uma vaga até o cliente desistir.
type ConcurrencyOptions struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
	// Slots permite compartilhar o semáforo (ex: gauge de requisições em
	// andamento). Nil cria um com capacidade Max.
	Slots    domain.Slots
	OnReject func(r *http.Request)
}

func ConcurrencyMiddleware(opts ConcurrencyOptions) func(next http.Handler) http.Handler {
	if opts.Slots == nil {
		if opts.Max <= 0 {
			return func(next http.Handler) http.Handler { return next }
		}
		opts.Slots = infra.NewSemaphore(opts.Max)
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}

	gate := application.Gate{Slots: opts.Slots, Timeout: opts.AcquireTimeout}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			leave, ok := gate.Enter(r.Context())
			if !ok {
				if opts.OnReject != nil {
					opts.OnReject(r)
				}
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			defer leave()

			next.ServeHTTP(w, r)
		})
	}
}
