package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"trends-wordcloud/middleware/ratelimit/application"
	"trends-wordcloud/middleware/ratelimit/domain"
)

type Options struct {
	// Buckets nil desliga o middleware.
	Buckets            domain.Buckets
	KeyFn              KeyFunc
	KeyHeader          string
	TrustXForwardedFor bool
	RejectStatus       int
	MinRetryAfter      time.Duration
	// ExposeHeaders adiciona X-RateLimit-Key/RPS/Burst às respostas.
	ExposeHeaders bool
	OnReject      func(r *http.Request, key domain.ClientKey)
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

// Middleware limita requisições por cliente. Bloqueadas recebem RejectStatus
// (429 por padrão) e Retry-After com a espera até o próximo token,
// arredondada para cima.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.Buckets == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}

	throttle := application.Throttle{
		Buckets:       opts.Buckets,
		MinRetryAfter: opts.MinRetryAfter,
	}
	info, hasInfo := opts.Buckets.(rateInfo)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := domain.ClientKey(opts.KeyFn(r))

			if opts.ExposeHeaders {
				h := w.Header()
				h.Set("X-RateLimit-Key", string(key))
				if hasInfo {
					h.Set("X-RateLimit-RPS", strconv.FormatFloat(info.RPS(), 'f', -1, 64))
					h.Set("X-RateLimit-Burst", strconv.Itoa(info.Burst()))
				}
			}

			dec := throttle.Decide(key)
			if !dec.Allowed {
				if opts.OnReject != nil {
					opts.OnReject(r, key)
				}
				w.Header().Set("Retry-After", retryAfter(dec.RetryAfter))
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfter(d time.Duration) string {
	return strconv.Itoa(max(1, int(math.Ceil(d.Seconds()))))
}
