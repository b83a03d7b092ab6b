package application

import (
	"strings"

	"trends-wordcloud/wordcloud/domain"
)

// Normalize junta as frases com um espaço, converte para minúsculas e quebra
// em tokens por espaço em branco. Sem stemming, stop words ou remoção de
// pontuação.
func Normalize(terms []string) []string {
	return strings.Fields(strings.ToLower(strings.Join(terms, " ")))
}

// Tally conta ocorrências em uma única passada da esquerda para a direita.
func Tally(tokens []string) domain.Frequencies {
	freq := make(domain.Frequencies)
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}

func Count(terms []string) domain.Frequencies {
	return Tally(Normalize(terms))
}
