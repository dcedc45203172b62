package classifier

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters, so single letters
// and punctuation never become features.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// VectorizerConfig describes how a filename is turned into features.
type VectorizerConfig struct {
	// CaseSensitive disables lowercasing of the input.
	CaseSensitive bool `yaml:"case_sensitive" msgpack:"case_sensitive"`
	// NgramMin and NgramMax bound the word n-grams that are extracted.
	// Zero values default to 1.
	NgramMin int `yaml:"ngram_min" msgpack:"ngram_min"`
	NgramMax int `yaml:"ngram_max" msgpack:"ngram_max"`
	// IDF optionally scales each term count by an inverse document frequency.
	IDF map[string]float64 `yaml:"idf" msgpack:"idf"`
}

// vectorizer is the validated, ready-to-use form of VectorizerConfig.
type vectorizer struct {
	lowercase  bool
	ngramMin   int
	ngramMax   int
	idf        map[string]float64
	vocabulary map[string]struct{}
}

// tokenize splits text into tokens, lowercasing first unless case sensitive.
func (v *vectorizer) tokenize(text string) []string {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	return tokenPattern.FindAllString(text, -1)
}

// transform returns the L2-normalized term weights for text. Terms outside the
// vocabulary are dropped before normalization.
func (v *vectorizer) transform(text string) map[string]float64 {
	tokens := v.tokenize(text)
	counts := make(map[string]float64)
	for n := v.ngramMin; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			if _, ok := v.vocabulary[term]; !ok {
				continue
			}
			counts[term]++
		}
	}

	var sumSquares float64
	for term, count := range counts {
		if idf, ok := v.idf[term]; ok {
			count *= idf
			counts[term] = count
		}
		sumSquares += count * count
	}
	if sumSquares == 0 {
		return counts
	}

	norm := math.Sqrt(sumSquares)
	for term := range counts {
		counts[term] /= norm
	}
	return counts
}
