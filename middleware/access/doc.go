// Package access observa as respostas do servidor de arquivos: log por
// requisição (log/slog), métricas Prometheus e contadores em memória ou Redis.
//
// Gravar estatísticas é best-effort: erro do Recorder é logado e a resposta
// segue normalmente.
package access
