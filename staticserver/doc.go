// Package staticserver monta o servidor de arquivos estáticos: resolve o
// diretório servido, encadeia os middlewares sobre http.FileServer e roda o
// loop de atendimento até o contexto encerrar.
package staticserver
