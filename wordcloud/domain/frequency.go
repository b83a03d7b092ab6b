package domain

import (
	"sort"

	"github.com/samber/lo"
)

// Frequencies associa cada token distinto ao seu número de ocorrências.
type Frequencies map[string]int

type WordCount struct {
	Word  string
	Count int
}

// Total soma todas as contagens. Deve bater com o número de tokens que
// originaram o mapa.
func (f Frequencies) Total() int {
	return lo.Sum(lo.Values(f))
}

// Top devolve as n palavras mais frequentes, ordenadas por contagem
// decrescente e, em caso de empate, por ordem alfabética.
// n <= 0 devolve todas.
func (f Frequencies) Top(n int) []WordCount {
	out := lo.MapToSlice(f, func(w string, c int) WordCount {
		return WordCount{Word: w, Count: c}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Limit é Top em formato de mapa: é o que o motor de layout recebe quando
// MaxWords está configurado.
func (f Frequencies) Limit(n int) Frequencies {
	if n <= 0 || n >= len(f) {
		return f
	}
	top := f.Top(n)
	out := make(Frequencies, len(top))
	for _, wc := range top {
		out[wc.Word] = wc.Count
	}
	return out
}
