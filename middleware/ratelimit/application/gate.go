package application

import (
	"context"
	"time"

	"trends-wordcloud/middleware/ratelimit/domain"
)

// Gate controla a entrada no file server. Timeout<=0 espera até o cliente
// desistir; com Slots nil a entrada é livre.
type Gate struct {
	Slots   domain.Slots
	Timeout time.Duration
}

// Enter reserva uma vaga. Com ok=false nada foi reservado.
func (g Gate) Enter(ctx context.Context) (leave func(), ok bool) {
	if g.Slots == nil {
		return func() {}, true
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}
	return g.Slots.Acquire(ctx)
}
