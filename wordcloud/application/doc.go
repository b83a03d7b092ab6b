// Package application contém o caso de uso de exportação da nuvem de palavras:
// normalizar, contar, renderizar e persistir.
//
// Depende apenas do pacote domain. Motor de layout, escrita de arquivo e
// publicação são injetados.
package application
