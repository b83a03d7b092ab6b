// Package infra implementa os contratos de domain: BucketStore (token bucket
// por cliente) e Semaphore (vagas de atendimento).
package infra
