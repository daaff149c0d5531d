package textproc

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords_en.txt
var englishStopwords string

// StopwordSet is an immutable set of lowercase words dropped before classification.
type StopwordSet map[string]struct{}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// EnglishStopwords returns the built-in English list.
func EnglishStopwords() StopwordSet {
	set, _ := readStopwords(strings.NewReader(englishStopwords))
	return set
}

// LoadStopwords reads a newline-separated stopword file. An empty path yields the
// built-in English list.
func LoadStopwords(path string) (StopwordSet, error) {
	if path == "" {
		return EnglishStopwords(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopwords file: %w", err)
	}
	defer f.Close()

	set, err := readStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords file %s: %w", path, err)
	}
	return set, nil
}

func readStopwords(r io.Reader) (StopwordSet, error) {
	set := make(StopwordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
