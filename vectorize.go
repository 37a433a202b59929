package emotion

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// A Vectorizer maps a token sequence onto the trained TF-IDF feature space.
// The vocabulary and IDF weights come from the model artifact and are never
// mutated, so a single Vectorizer is safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func newVectorizer(vocabulary map[string]int, idf []float64) *Vectorizer {
	return &Vectorizer{vocabulary: vocabulary, idf: idf}
}

// Dimension returns the length of the vectors Vectorize produces.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// Vectorize computes the L2-normalized sublinear TF-IDF vector for tokens.
// Unigrams and adjacent space-joined bigrams are counted; n-grams outside
// the vocabulary contribute nothing. An input with no in-vocabulary terms
// yields the zero vector.
func (v *Vectorizer) Vectorize(tokens []string) *mat.VecDense {
	vec := mat.NewVecDense(len(v.idf), nil)

	tf := make(map[int]float64)
	for i, tok := range tokens {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
		}
		if i+1 < len(tokens) {
			if idx, ok := v.vocabulary[tok+" "+tokens[i+1]]; ok {
				tf[idx]++
			}
		}
	}

	for idx, count := range tf {
		// Sublinear scaling: 1 + ln(tf).
		vec.SetVec(idx, (1+math.Log(count))*v.idf[idx])
	}

	norm := mat.Norm(vec, 2)
	if norm > 0 {
		vec.ScaleVec(1/norm, vec)
	}
	return vec
}
