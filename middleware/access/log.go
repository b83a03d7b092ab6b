package access

import (
	"io"
	"log/slog"
	"net/http"
)

// NewLogger cria o logger de acesso em formato texto.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func logEvent(l *slog.Logger, r *http.Request, ev Event) {
	level := slog.LevelInfo
	if ev.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	} else if ev.Status >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	l.LogAttrs(r.Context(), level, "request",
		slog.String("client", ev.Client),
		slog.String("method", ev.Method),
		slog.String("path", ev.Path),
		slog.String("proto", r.Proto),
		slog.Int("status", ev.Status),
		slog.Int64("bytes", ev.Bytes),
		slog.Duration("duration", ev.Duration),
	)
}
