package infra

import (
	"encoding/json"
	"os"

	"trends-wordcloud/wordcloud/domain"
)

type frequencyDoc struct {
	Total int         `json:"total"`
	Words []wordEntry `json:"words"`
}

type wordEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WriteFrequenciesJSON grava o mapa ordenado por frequência, no formato
// {"total": N, "words": [{"word": ..., "count": ...}]}.
func WriteFrequenciesJSON(path string, freq domain.Frequencies) error {
	doc := frequencyDoc{Total: freq.Total(), Words: []wordEntry{}}
	for _, wc := range freq.Top(0) {
		doc.Words = append(doc.Words, wordEntry{Word: wc.Word, Count: wc.Count})
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
