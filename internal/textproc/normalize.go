// Package textproc cleans review text before it is vectorized.
package textproc

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// "http" followed by anything up to the next unicode whitespace
	urlPattern = regexp.MustCompile(`http[^\s\x0b\x1c-\x1f\x{85}\p{Z}]+`)

	nonLetterPattern = regexp.MustCompile(`[^A-Za-z ]+`)
)

// Normalizer turns raw review text into the cleaned form the vectorizer was fitted on.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	stopwords StopwordSet
}

// NewNormalizer creates a Normalizer filtering the given stopwords.
// A nil set disables stopword filtering.
func NewNormalizer(stopwords StopwordSet) *Normalizer {
	return &Normalizer{stopwords: stopwords}
}

// Normalize strips URLs and every character that is not an ASCII letter or space,
// lowercases, and drops stopwords. When every token is a stopword the lowercased,
// stripped text is returned unfiltered so the classifier never sees an empty input
// for non-empty letters.
func (n *Normalizer) Normalize(raw string) string {
	text := urlPattern.ReplaceAllString(raw, "")
	text = nonLetterPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)

	tokens := strings.Fields(text)
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n.stopwords.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return text
	}
	return strings.Join(kept, " ")
}

// Stringify renders any decoded JSON value as text. Strings pass through, numbers
// use their shortest literal form, null becomes "None" and booleans "True"/"False"
// (the spelling the model's training text used), and anything else is compact JSON.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
