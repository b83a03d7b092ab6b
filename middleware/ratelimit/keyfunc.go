package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc identifica o cliente de uma requisição.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc usa, nesta ordem: o header configurado, o primeiro IP do
// X-Forwarded-For (se confiável) e o host do RemoteAddr.
func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		return ClientHost(r)
	}
}

// ClientHost devolve o host de RemoteAddr, ou "unknown".
func ClientHost(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		return host
	}
	if addr != "" {
		return addr
	}
	return "unknown"
}
