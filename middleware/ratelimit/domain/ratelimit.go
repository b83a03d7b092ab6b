package domain

import "time"

// ClientKey identifica quem pede arquivos: IP, valor de header, etc.
type ClientKey string

// Verdict é a resposta do bucket de um cliente.
type Verdict struct {
	Allowed bool
	// Wait é quanto falta para o próximo token. Zero quando Allowed ou
	// quando o bucket nunca libera (burst 0).
	Wait time.Duration
}

// Buckets guarda um token bucket por cliente. Take consome um token se houver.
type Buckets interface {
	Take(key ClientKey, now time.Time) Verdict
}
