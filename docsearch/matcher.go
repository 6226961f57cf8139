package docsearch

import (
	"fmt"
	"unicode"
)

const (
	// contextRadius is how many characters of context are kept on each side
	// of the first match
	contextRadius = 150

	// previewLength is how much of the document is returned when the query
	// is not found
	previewLength = 300
)

// Result is the outcome of one keyword lookup in a document
type Result struct {
	Query   string `json:"query"`
	Found   bool   `json:"found"`
	Answer  string `json:"answer"`
	Context string `json:"context"`
}

// Matcher performs case-insensitive keyword lookup in uploaded documents
type Matcher struct{}

// NewMatcher creates a document matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match decodes content and searches it for query, case-insensitively.
// When found, the context window spans up to contextRadius characters on
// each side of the first occurrence; otherwise the first previewLength
// characters of the document are returned. Offsets are in characters, not
// bytes, so CJK documents window correctly.
func (m *Matcher) Match(query string, content []byte) Result {
	text := DecodeText(content)

	runes := []rune(text)
	queryRunes := []rune(query)
	pos := indexFold(runes, queryRunes)

	result := Result{
		Query: query,
		Found: pos >= 0,
	}

	if pos >= 0 {
		start := pos - contextRadius
		if start < 0 {
			start = 0
		}
		end := pos + len(queryRunes) + contextRadius
		if end > len(runes) {
			end = len(runes)
		}

		context := string(runes[start:end])
		if start > 0 {
			context = "..." + context
		}
		if end < len(runes) {
			context = context + "..."
		}

		result.Answer = fmt.Sprintf("query %q found in document", query)
		result.Context = context
	} else {
		context := text
		if len(runes) > previewLength {
			context = string(runes[:previewLength]) + "..."
		}

		result.Answer = fmt.Sprintf("query %q not found in document", query)
		result.Context = context
	}

	return result
}

// indexFold returns the character offset of the first case-insensitive
// occurrence of query in text, or -1. Folding is done rune by rune so the
// offset stays aligned with the original text.
func indexFold(text, query []rune) int {
	if len(query) == 0 {
		return 0
	}
	if len(query) > len(text) {
		return -1
	}

	for i := 0; i+len(query) <= len(text); i++ {
		match := true
		for j, q := range query {
			if unicode.ToLower(text[i+j]) != unicode.ToLower(q) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
