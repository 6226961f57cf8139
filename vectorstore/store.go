// Package vectorstore is a placeholder for a real vector search: it does
// literal substring matching over a fixed corpus. No embeddings, no index,
// no ranking.
package vectorstore

import "strings"

// corpus is the fixed two-sentence sample the placeholder matches against
var corpus = []string{
	"LangChain is a framework for developing applications powered by language models.",
	"LangChain lets you connect a language model to other sources of data.",
}

// Match returns the corpus entries that contain query, case-insensitively
func Match(query string) []string {
	q := strings.ToLower(query)

	matched := make([]string, 0, len(corpus))
	for _, text := range corpus {
		if strings.Contains(strings.ToLower(text), q) {
			matched = append(matched, text)
		}
	}
	return matched
}
