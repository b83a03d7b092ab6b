// Package domain define os contratos de limitação do servidor de arquivos:
// buckets por cliente e vagas de atendimento. Não depende de net/http.
package domain
