package classifier

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
)

func loadTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := Load(context.Background(), storage.NewLocalStorage("testdata"), "tfidf_vectorizer.json", "sentiment_model.json")
	require.NoError(t, err)
	return c
}

func TestLoad_Classify(t *testing.T) {
	c := loadTestClassifier(t)

	assert.Equal(t, 6, c.Dimension())
	assert.Equal(t, []domain.Label{0, 1, 2}, c.Classes())

	tests := []struct {
		text string
		want domain.Label
	}{
		{"terrible product", domain.LabelNegative},
		{"bad", domain.LabelNegative},
		{"love great product", domain.LabelPositive},
		{"okay", domain.LabelNeutral},
		{"", domain.LabelNeutral},
		{"unknown words only", domain.LabelNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.text), "text %q", tt.text)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	_, err := Load(context.Background(), storage.NewLocalStorage("testdata"), "tfidf_vectorizer.json", "nope.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoad_CorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vec.json"), []byte("{not json"), 0o644))
	data, err := os.ReadFile(filepath.Join("testdata", "sentiment_model.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.json"), data, 0o644))

	_, err = Load(context.Background(), storage.NewLocalStorage(dir), "vec.json", "model.json")
	assert.ErrorContains(t, err, "failed to decode vectorizer")
}

func TestNew_DimensionMismatch(t *testing.T) {
	vec, err := ParseVectorizer(strings.NewReader(`{"vocabulary":{"a":0,"b":1},"idf":[1,1]}`))
	require.NoError(t, err)
	model, err := NewLinearModel([]int{0, 1}, [][]float64{{1, 1, 1}}, []float64{0})
	require.NoError(t, err)

	_, err = New(vec, model)
	assert.ErrorContains(t, err, "vectorizer produces 2 features but model expects 3")
}

func TestTransform_TfidfL2(t *testing.T) {
	vec, err := ParseVectorizer(strings.NewReader(`{
		"vocabulary": {"good": 0, "product": 1, "very": 2},
		"idf": [2.0, 1.0, 3.0]
	}`))
	require.NoError(t, err)

	fv := vec.Transform("Good good PRODUCT x")
	assert.Equal(t, 3, fv.Dim)
	assert.Equal(t, []int{0, 1}, fv.Indices)

	// counts good=2, product=1 -> weighted 4, 1 -> l2 norm sqrt(17)
	n := math.Sqrt(17)
	assert.InDelta(t, 4/n, fv.Values[0], 1e-9)
	assert.InDelta(t, 1/n, fv.Values[1], 1e-9)
}

func TestTransform_Options(t *testing.T) {
	t.Run("count without norm", func(t *testing.T) {
		vec, err := ParseVectorizer(strings.NewReader(`{"kind":"count","vocabulary":{"ab":0,"cd":1},"norm":""}`))
		require.NoError(t, err)
		fv := vec.Transform("ab ab cd a")
		assert.Equal(t, []float64{2, 1}, fv.Values)
	})

	t.Run("bigrams", func(t *testing.T) {
		vec, err := ParseVectorizer(strings.NewReader(`{
			"kind":"count","vocabulary":{"not":0,"good":1,"not good":2},
			"ngram_range":[1,2],"norm":""}`))
		require.NoError(t, err)
		fv := vec.Transform("not good")
		assert.Equal(t, []int{0, 1, 2}, fv.Indices)
		assert.Equal(t, []float64{1, 1, 1}, fv.Values)
	})

	t.Run("sublinear tf and l1", func(t *testing.T) {
		vec, err := ParseVectorizer(strings.NewReader(`{
			"vocabulary":{"aa":0,"bb":1},"idf":[1,1],"sublinear_tf":true,"norm":"l1"}`))
		require.NoError(t, err)
		fv := vec.Transform("aa aa aa bb")
		a := 1 + math.Log(3)
		assert.InDelta(t, a/(a+1), fv.Values[0], 1e-9)
		assert.InDelta(t, 1/(a+1), fv.Values[1], 1e-9)
	})

	t.Run("binary", func(t *testing.T) {
		vec, err := ParseVectorizer(strings.NewReader(`{"kind":"count","vocabulary":{"aa":0},"binary":true,"norm":""}`))
		require.NoError(t, err)
		assert.Equal(t, []float64{1}, vec.Transform("aa aa aa").Values)
	})

	t.Run("case preserved when lowercase is off", func(t *testing.T) {
		vec, err := ParseVectorizer(strings.NewReader(`{"kind":"count","vocabulary":{"aa":0},"lowercase":false}`))
		require.NoError(t, err)
		assert.Empty(t, vec.Transform("AA").Indices)
	})
}

func TestParseVectorizer_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty vocabulary":   `{"vocabulary":{}}`,
		"idf length":         `{"vocabulary":{"a":0},"idf":[1,2]}`,
		"index out of range": `{"kind":"count","vocabulary":{"a":3}}`,
		"duplicate index":    `{"kind":"count","vocabulary":{"a":0,"b":0}}`,
		"bad kind":           `{"kind":"hashing","vocabulary":{"a":0}}`,
		"bad norm":           `{"kind":"count","vocabulary":{"a":0},"norm":"max"}`,
		"bad ngram":          `{"kind":"count","vocabulary":{"a":0},"ngram_range":[2,1]}`,
		"bad pattern":        `{"kind":"count","vocabulary":{"a":0},"token_pattern":"("}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseVectorizer(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestParseModel(t *testing.T) {
	t.Run("multinomial nb", func(t *testing.T) {
		m, err := ParseModel(strings.NewReader(`{
			"kind":"multinomial_nb","classes":[0,1],
			"class_log_prior":[-0.69,-0.69],
			"feature_log_prob":[[-0.1,-3.0],[-3.0,-0.1]]}`))
		require.NoError(t, err)
		assert.Equal(t, domain.Label(0), m.Predict(FeatureVector{Dim: 2, Indices: []int{0}, Values: []float64{1}}))
		assert.Equal(t, domain.Label(1), m.Predict(FeatureVector{Dim: 2, Indices: []int{1}, Values: []float64{1}}))
	})

	t.Run("binary linear", func(t *testing.T) {
		m, err := ParseModel(strings.NewReader(`{"kind":"linear","classes":[0,1],"coef":[[1.5]],"intercept":[-1]}`))
		require.NoError(t, err)
		assert.Equal(t, domain.Label(1), m.Predict(FeatureVector{Dim: 1, Indices: []int{0}, Values: []float64{1}}))
		assert.Equal(t, domain.Label(0), m.Predict(FeatureVector{Dim: 1}))
	})

	t.Run("ties go to first class", func(t *testing.T) {
		m, err := NewLinearModel([]int{2, 0, 1}, [][]float64{{0}, {0}, {0}}, []float64{0, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, domain.Label(2), m.Predict(FeatureVector{Dim: 1}))
	})

	invalid := map[string]string{
		"not json":         `[`,
		"kind":             `{"kind":"tree","classes":[0,1],"coef":[[1]],"intercept":[0]}`,
		"one class":        `{"classes":[0],"coef":[[1]],"intercept":[0]}`,
		"row count":        `{"classes":[0,1,2],"coef":[[1],[1]],"intercept":[0,0]}`,
		"intercept count":  `{"classes":[0,1],"coef":[[1],[1]],"intercept":[0]}`,
		"ragged rows":      `{"classes":[0,1],"coef":[[1,2],[1]],"intercept":[0,0]}`,
		"binary needs two": `{"classes":[0,1,2],"coef":[[1]],"intercept":[0]}`,
		"no coefficients":  `{"classes":[0,1],"coef":[],"intercept":[]}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseModel(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := loadTestClassifier(t)

	done := make(chan domain.Label, 50)
	for i := 0; i < 50; i++ {
		go func() { done <- c.Classify("terrible product") }()
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, domain.LabelNegative, <-done)
	}
}
