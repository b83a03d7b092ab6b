package access

import (
	"context"
	"strconv"
	"time"
)

// Event descreve uma resposta já enviada.
type Event struct {
	Client   string
	Method   string
	Path     string
	Status   int
	Bytes    int64
	Duration time.Duration
	At       time.Time
}

// StatusClass agrupa o status em "2xx", "3xx", "4xx" ou "5xx".
func (e Event) StatusClass() string {
	if e.Status < 100 || e.Status > 599 {
		return "other"
	}
	return strconv.Itoa(e.Status/100) + "xx"
}

// Recorder persiste eventos de acesso.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}
