// Package ratelimit protege o servidor de arquivos estáticos com dois
// middlewares net/http:
//
//   - ConcurrencyMiddleware: vagas de atendimento. Com Max=1 (padrão do
//     cmd/server) as requisições são servidas uma de cada vez.
//   - Middleware: token bucket por cliente, ligado com RATE_ENABLED=true.
//
// As regras ficam em application, os contratos em domain e as implementações
// (golang.org/x/time/rate e semáforo em channel) em infra.
package ratelimit
