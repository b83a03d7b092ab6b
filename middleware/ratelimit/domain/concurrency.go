package domain

import "context"

// Slots limita quantas requisições são servidas ao mesmo tempo.
//
// Acquire bloqueia até haver vaga ou ctx encerrar. Com ok=true, release deve
// ser chamada ao fim do atendimento.
type Slots interface {
	Acquire(ctx context.Context) (release func(), ok bool)
	InUse() int
	Cap() int
}
