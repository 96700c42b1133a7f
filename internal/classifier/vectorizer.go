package classifier

import (
	"fmt"
	"math"
	"regexp"
)

// sklearn's default token pattern: word runs of two or more characters.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer is a fitted TF-IDF vectorizer exported from the training
// pipeline: a term→column vocabulary and per-column inverse document
// frequencies.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

func (v *Vectorizer) validate() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	for term, col := range v.Vocabulary {
		if col < 0 || col >= len(v.IDF) {
			return fmt.Errorf("term %q maps to column %d, outside idf vector of length %d", term, col, len(v.IDF))
		}
	}
	return nil
}

// Transform maps normalized text to a sparse TF-IDF feature vector
// (column→weight), l2-normalized to match the fitted transform.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	features := make(map[int]float64)
	for _, term := range tokenPattern.FindAllString(text, -1) {
		col, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		features[col] += v.IDF[col]
	}

	var norm float64
	for _, w := range features {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for col := range features {
			features[col] /= norm
		}
	}
	return features
}
