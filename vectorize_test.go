package emotion

import (
	"math"
	"reflect"
	"testing"
)

func testVectorizer(t *testing.T) *Vectorizer {
	t.Helper()
	model := testModel(t)
	return newVectorizer(model.vocabulary, model.idf)
}

func TestVectorizeDeterministic(t *testing.T) {
	v := testVectorizer(t)
	tokens := []string{"happy", "today", "happy", "not", "happy"}

	first := v.Vectorize(tokens)
	second := v.Vectorize(tokens)
	if !reflect.DeepEqual(first.RawVector().Data, second.RawVector().Data) {
		t.Errorf("Vectorize not bit-identical across calls:\n%v\n%v",
			first.RawVector().Data, second.RawVector().Data)
	}
}

func TestVectorizeZeroCases(t *testing.T) {
	tests := []struct {
		tokens []string
		desc   string
	}{
		{nil, "No tokens"},
		{[]string{}, "Empty token slice"},
		{[]string{"zebra", "quantum"}, "Only out-of-vocabulary tokens"},
	}

	v := testVectorizer(t)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			vec := v.Vectorize(tt.tokens)
			if vec.Len() != v.Dimension() {
				t.Fatalf("Expected dimension %d, got %d", v.Dimension(), vec.Len())
			}
			for i := 0; i < vec.Len(); i++ {
				if vec.AtVec(i) != 0 {
					t.Errorf("Expected zero vector, found %f at index %d", vec.AtVec(i), i)
				}
			}
		})
	}
}

func TestVectorizeUnitNorm(t *testing.T) {
	v := testVectorizer(t)
	inputs := [][]string{
		{"happy"},
		{"happy", "today"},
		{"not", "happy", "deadline", "zebra"},
	}

	for _, tokens := range inputs {
		vec := v.Vectorize(tokens)
		var norm float64
		for i := 0; i < vec.Len(); i++ {
			norm += vec.AtVec(i) * vec.AtVec(i)
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("Expected unit norm for %v, got %.15f", tokens, norm)
		}
	}
}

func TestVectorizeBigrams(t *testing.T) {
	v := testVectorizer(t)
	vec := v.Vectorize([]string{"not", "happy"})

	// "not" alone is out of vocabulary, but both the "happy" unigram and the
	// "not happy" bigram must register.
	if vec.AtVec(0) == 0 {
		t.Error("Expected nonzero weight for unigram \"happy\"")
	}
	if vec.AtVec(5) == 0 {
		t.Error("Expected nonzero weight for bigram \"not happy\"")
	}
}

func TestVectorizeSublinearScaling(t *testing.T) {
	v := testVectorizer(t)
	model := testModel(t)

	// "happy" appears twice, "deadline" once; bigrams here are out of
	// vocabulary. The component ratio must match (1+ln 2)·idf0 : idf3.
	vec := v.Vectorize([]string{"happy", "zebra", "happy", "zebra", "deadline"})

	wantRatio := (1 + math.Log(2)) * model.idf[0] / model.idf[3]
	gotRatio := vec.AtVec(0) / vec.AtVec(3)
	if math.Abs(gotRatio-wantRatio) > 1e-9 {
		t.Errorf("Expected component ratio %.9f, got %.9f", wantRatio, gotRatio)
	}
}
