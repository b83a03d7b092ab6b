// Package domain define os tipos e contratos da nuvem de palavras.
//
// Este pacote não faz I/O: não abre arquivos, não desenha imagens e não fala
// com Redis. A intenção é manter a contagem de frequências testável sem
// depender do motor de layout.
package domain
