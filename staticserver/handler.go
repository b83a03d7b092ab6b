package staticserver

import (
	"log/slog"
	"net/http"
	"time"

	"trends-wordcloud/middleware/access"
	"trends-wordcloud/middleware/nocache"
	"trends-wordcloud/middleware/ratelimit"
	"trends-wordcloud/middleware/ratelimit/domain"
	"trends-wordcloud/middleware/ratelimit/infra"
)

type Options struct {
	// Dir servido; vazio usa o diretório de trabalho.
	Dir string

	ConcurrencyMax     int
	ConcurrencyTimeout time.Duration

	// Buckets nil desliga o rate limit por cliente.
	Buckets       domain.Buckets
	RateKeyFn     ratelimit.KeyFunc
	MinRetryAfter time.Duration
	RateHeaders   bool

	Logger      *slog.Logger
	Metrics     *access.Metrics
	MetricsPath string
	Recorder    access.Recorder
}

// NewHandler monta a cadeia, de dentro para fora:
//
//	http.FileServer -> concorrência -> rate limit -> nocache -> access
//
// nocache fica por fora dos limitadores para que 429 e 503 também saiam sem
// cache. O endpoint de métricas, quando habilitado, passa pela mesma cadeia.
func NewHandler(opts Options) http.Handler {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	var h http.Handler = http.FileServer(http.Dir(dir))
	if opts.Metrics != nil && opts.MetricsPath != "" {
		mux := http.NewServeMux()
		mux.Handle(opts.MetricsPath, opts.Metrics.Handler())
		mux.Handle("/", h)
		h = mux
	}

	var slots domain.Slots
	if opts.ConcurrencyMax > 0 {
		sem := infra.NewSemaphore(opts.ConcurrencyMax)
		slots = sem
		if opts.Metrics != nil {
			// já registrado quando o mesmo Metrics serve mais de um handler
			_ = opts.Metrics.TrackInFlight(sem.InUse)
		}
	}
	h = ratelimit.ConcurrencyMiddleware(ratelimit.ConcurrencyOptions{
		Slots:          slots,
		RejectStatus:   http.StatusServiceUnavailable,
		AcquireTimeout: opts.ConcurrencyTimeout,
		OnReject:       func(*http.Request) { opts.Metrics.Reject("busy") },
	})(h)

	h = ratelimit.Middleware(ratelimit.Options{
		Buckets:       opts.Buckets,
		KeyFn:         opts.RateKeyFn,
		MinRetryAfter: opts.MinRetryAfter,
		ExposeHeaders: opts.RateHeaders,
		OnReject:      func(*http.Request, domain.ClientKey) { opts.Metrics.Reject("ratelimit") },
	})(h)
	h = nocache.Middleware()(h)

	return access.Middleware(access.Options{
		Logger:   opts.Logger,
		Metrics:  opts.Metrics,
		Recorder: opts.Recorder,
		ClientFn: ratelimit.ClientHost,
	})(h)
}
