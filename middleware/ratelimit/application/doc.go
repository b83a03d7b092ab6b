// Package application contém as regras de limitação sem net/http:
// Throttle decide allow/deny com Retry-After e Gate reserva vagas de
// atendimento.
package application
