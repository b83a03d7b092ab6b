package access

import (
	"log/slog"
	"net/http"
	"time"
)

type Options struct {
	// Logger nil desliga o log de acesso.
	Logger   *slog.Logger
	Metrics  *Metrics
	Recorder Recorder
	// ClientFn identifica o cliente; padrão é o RemoteAddr.
	ClientFn func(r *http.Request) string
	// now é substituível nos testes.
	now func() time.Time
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.ClientFn == nil {
		opts.ClientFn = func(r *http.Request) string { return r.RemoteAddr }
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := opts.now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			ev := Event{
				Client:   opts.ClientFn(r),
				Method:   r.Method,
				Path:     r.URL.Path,
				Status:   sw.status(),
				Bytes:    sw.bytes,
				Duration: opts.now().Sub(start),
				At:       start,
			}

			if opts.Logger != nil {
				logEvent(opts.Logger, r, ev)
			}
			if opts.Metrics != nil {
				opts.Metrics.Observe(ev)
			}
			if opts.Recorder != nil {
				if err := opts.Recorder.Record(r.Context(), ev); err != nil && opts.Logger != nil {
					opts.Logger.Warn("access stats record failed", "path", ev.Path, "error", err)
				}
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	code  int
	bytes int64
}

func (w *statusWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusWriter) status() int {
	if w.code == 0 {
		return http.StatusOK
	}
	return w.code
}
