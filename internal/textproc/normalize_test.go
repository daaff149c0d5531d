package textproc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(EnglishStopwords())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url punctuation and stopwords", "Check this http://x.co now!!", "check"},
		{"all stopwords fall back", "the a an", "the a an"},
		{"fallback keeps stripped spacing", "The,  A!", "the  a"},
		{"empty", "", ""},
		{"digits dropped", "5 stars, love it 100%", "stars love"},
		{"https url in middle", "great https://shop.example/p?id=1 product", "great product"},
		{"non ascii letters removed", "très bon produit", "trs bon produit"},
		{"newlines glue words", "good\nproduct", "goodproduct"},
		{"url ends at non-breaking space", "see http://a.b\u00a0awesome", "see awesome"},
		{"mixed case", "TERRIBLE Product", "terrible product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(EnglishStopwords())

	inputs := []string{
		"Check this http://x.co now!!",
		"the a an",
		"I REALLY loved it... would buy again :)",
		"   ",
		"Worst. Purchase. Ever.",
		"Das ist nicht gut",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNormalize_NilStopwords(t *testing.T) {
	n := NewNormalizer(nil)
	assert.Equal(t, "the product", n.Normalize("The product!"))
}

func TestNormalize_NonStringValues(t *testing.T) {
	n := NewNormalizer(EnglishStopwords())

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"null", nil, "none"},
		{"number", float64(5), ""},
		{"true", true, "true"},
		{"false", false, "false"},
		{"string", "Great!", "great"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(Stringify(tt.in)))
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "None", Stringify(nil))
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "5", Stringify(float64(5)))
	assert.Equal(t, "2.5", Stringify(2.5))
	assert.Equal(t, "False", Stringify(false))
	assert.Equal(t, "True", Stringify(true))
	assert.Equal(t, `["a",1]`, Stringify([]interface{}{"a", float64(1)}))
	assert.Equal(t, `{"k":"v"}`, Stringify(map[string]interface{}{"k": "v"}))
}

func TestEnglishStopwords(t *testing.T) {
	set := EnglishStopwords()

	assert.Len(t, set, 179)
	for _, w := range []string{"the", "a", "an", "this", "now", "not"} {
		assert.True(t, set.Contains(w), w)
	}
	assert.False(t, set.Contains("product"))
}

func TestLoadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# custom\nFoo\n\nbar\n"), 0o644))

	set, err := LoadStopwords(path)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains("foo"))
	assert.True(t, set.Contains("bar"))

	def, err := LoadStopwords("")
	require.NoError(t, err)
	assert.Len(t, def, 179)

	_, err = LoadStopwords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
