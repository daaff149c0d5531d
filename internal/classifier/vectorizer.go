package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"
)

// defaultTokenPattern matches tokens of two or more word characters.
const defaultTokenPattern = `\b\w\w+\b`

// FeatureVector is a sparse vector of fixed dimension. Indices are ascending.
type FeatureVector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Vectorizer maps cleaned text into the feature space the model was fitted on.
type Vectorizer interface {
	Transform(text string) FeatureVector
	Dimension() int
}

// vectorizerArtifact is the JSON export of a fitted term-frequency vectorizer.
type vectorizerArtifact struct {
	Kind         string         `json:"kind"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	NgramRange   []int          `json:"ngram_range"`
	Norm         *string        `json:"norm"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Binary       bool           `json:"binary"`
	Lowercase    *bool          `json:"lowercase"`
	TokenPattern string         `json:"token_pattern"`
}

// TfidfVectorizer applies a fitted vocabulary and (optionally) idf weights.
// It is read-only after construction.
type TfidfVectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	ngramMin    int
	ngramMax    int
	norm        string
	sublinearTF bool
	binary      bool
	lowercase   bool
	tokens      *regexp.Regexp
	dim         int
}

// ParseVectorizer decodes and validates a vectorizer artifact.
func ParseVectorizer(r io.Reader) (*TfidfVectorizer, error) {
	var a vectorizerArtifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer: %w", err)
	}

	kind := a.Kind
	if kind == "" {
		kind = "tfidf"
	}
	if kind != "tfidf" && kind != "count" {
		return nil, fmt.Errorf("unsupported vectorizer kind %q", a.Kind)
	}
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer vocabulary is empty")
	}

	dim := len(a.Vocabulary)
	seen := make([]bool, dim)
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("vocabulary index %d for %q out of range [0,%d)", idx, term, dim)
		}
		if seen[idx] {
			return nil, fmt.Errorf("vocabulary index %d assigned twice", idx)
		}
		seen[idx] = true
	}

	v := &TfidfVectorizer{
		vocabulary:  a.Vocabulary,
		ngramMin:    1,
		ngramMax:    1,
		norm:        "l2",
		sublinearTF: a.SublinearTF,
		binary:      a.Binary,
		lowercase:   true,
		dim:         dim,
	}

	if kind == "tfidf" {
		if len(a.IDF) != dim {
			return nil, fmt.Errorf("idf has %d weights, vocabulary has %d terms", len(a.IDF), dim)
		}
		v.idf = a.IDF
	}
	if len(a.NgramRange) == 2 {
		v.ngramMin, v.ngramMax = a.NgramRange[0], a.NgramRange[1]
		if v.ngramMin < 1 || v.ngramMax < v.ngramMin {
			return nil, fmt.Errorf("invalid ngram_range %v", a.NgramRange)
		}
	}
	if a.Norm != nil {
		switch *a.Norm {
		case "l1", "l2", "":
			v.norm = *a.Norm
		default:
			return nil, fmt.Errorf("unsupported norm %q", *a.Norm)
		}
	}
	if a.Lowercase != nil {
		v.lowercase = *a.Lowercase
	}

	pattern := strings.TrimPrefix(a.TokenPattern, "(?u)")
	if pattern == "" {
		pattern = defaultTokenPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid token_pattern: %w", err)
	}
	v.tokens = re

	return v, nil
}

// Dimension returns the size of the feature space.
func (v *TfidfVectorizer) Dimension() int {
	return v.dim
}

// Transform counts in-vocabulary n-grams of text and applies tf scaling, idf weights
// and normalization in that order.
func (v *TfidfVectorizer) Transform(text string) FeatureVector {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	words := v.tokens.FindAllString(text, -1)

	counts := make(map[int]float64)
	for n := v.ngramMin; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			term := words[i]
			if n > 1 {
				term = strings.Join(words[i:i+n], " ")
			}
			if idx, ok := v.vocabulary[term]; ok {
				counts[idx]++
			}
		}
	}

	fv := FeatureVector{
		Dim:     v.dim,
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		fv.Indices = append(fv.Indices, idx)
	}
	sort.Ints(fv.Indices)

	for _, idx := range fv.Indices {
		tf := counts[idx]
		switch {
		case v.binary:
			tf = 1
		case v.sublinearTF:
			tf = 1 + math.Log(tf)
		}
		if v.idf != nil {
			tf *= v.idf[idx]
		}
		fv.Values = append(fv.Values, tf)
	}

	normalize(fv.Values, v.norm)
	return fv
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
