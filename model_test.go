package emotion

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
)

// testParams returns a small hand-built artifact. The label order is
// alphabetical, as trained artifacts deliver it, which is deliberately not
// the canonical class order.
func testParams() ModelParams {
	return ModelParams{
		Vocabulary: map[string]int{
			"happy":     0,
			"sad":       1,
			"angry":     2,
			"deadline":  3,
			"today":     4,
			"not happy": 5,
		},
		DocFreq:   []int{10, 8, 6, 4, 12, 3},
		TotalDocs: 50,
		Classes:   []string{"anger", "happiness", "neutral", "sadness", "stress"},
		LogPriors: []float64{
			-1.6094379124341003,
			-1.6094379124341003,
			-1.6094379124341003,
			-1.6094379124341003,
			-1.6094379124341003,
		},
		LogLikelihoods: [][]float64{
			{-8, -8, -1, -8, -5, -8}, // anger
			{-1, -8, -8, -8, -3, -9}, // happiness
			{-6, -6, -6, -6, -2, -6}, // neutral
			{-8, -1, -8, -8, -5, -2}, // sadness
			{-8, -8, -8, -1, -5, -8}, // stress
		},
	}
}

func testModel(t *testing.T) *Model {
	t.Helper()
	model, err := ModelFromParams("test", testParams())
	if err != nil {
		t.Fatalf("Failed to build test model: %v", err)
	}
	return model
}

func TestModelRoundTrip(t *testing.T) {
	model := testModel(t)
	dir := filepath.Join(t.TempDir(), "emotion-v1")

	if err := model.Write(dir); err != nil {
		t.Fatalf("Failed to write model: %v", err)
	}
	loaded, err := ModelFromDisk(dir)
	if err != nil {
		t.Fatalf("Failed to reload model: %v", err)
	}

	if loaded.Name != "emotion-v1" {
		t.Errorf("Expected name emotion-v1, got %q", loaded.Name)
	}
	if loaded.VocabularySize() != model.VocabularySize() {
		t.Errorf("Vocabulary size changed across round trip: %d vs %d",
			model.VocabularySize(), loaded.VocabularySize())
	}
	if !reflect.DeepEqual(loaded.Labels(), model.Labels()) {
		t.Errorf("Labels changed across round trip: %v vs %v",
			model.Labels(), loaded.Labels())
	}

	before := NewPredictor(model)
	after := NewPredictor(loaded)
	for _, text := range []string{
		"I am so happy today!",
		"not happy",
		"the deadline is close",
		"???",
	} {
		if want, got := before.Predict(text), after.Predict(text); !reflect.DeepEqual(want, got) {
			t.Errorf("Prediction for %q changed across round trip:\nwant %+v\ngot  %+v", text, want, got)
		}
	}
}

func TestModelFromDiskMissing(t *testing.T) {
	_, err := ModelFromDisk(filepath.Join(t.TempDir(), "no-such-model"))
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable, got %v", err)
	}
}

func TestModelValidation(t *testing.T) {
	tests := []struct {
		mutate func(*ModelParams)
		desc   string
	}{
		{func(p *ModelParams) { p.Vocabulary = nil }, "Empty vocabulary"},
		{func(p *ModelParams) {
			p.Vocabulary = make(map[string]int)
			p.DocFreq = make([]int, MaxVocabularySize+1)
			p.LogLikelihoods = make([][]float64, len(p.Classes))
			for i := range p.LogLikelihoods {
				p.LogLikelihoods[i] = make([]float64, MaxVocabularySize+1)
			}
			for i := 0; i <= MaxVocabularySize; i++ {
				p.Vocabulary[fmt.Sprintf("term%d", i)] = i
			}
		}, "Vocabulary over the size cap"},
		{func(p *ModelParams) { p.Vocabulary["happy"] = 9 }, "Feature index out of range"},
		{func(p *ModelParams) { p.Vocabulary["happy"] = 1 }, "Duplicate feature index"},
		{func(p *ModelParams) { p.DocFreq = p.DocFreq[:4] }, "Document frequency length mismatch"},
		{func(p *ModelParams) { p.DocFreq[2] = -1 }, "Negative document frequency"},
		{func(p *ModelParams) { p.TotalDocs = 0 }, "Zero training documents"},
		{func(p *ModelParams) { p.Classes[0] = "joy" }, "Unknown class label"},
		{func(p *ModelParams) { p.Classes = p.Classes[:4] }, "Missing class"},
		{func(p *ModelParams) { p.Classes[1] = "anger" }, "Duplicate class"},
		{func(p *ModelParams) { p.LogPriors = p.LogPriors[:3] }, "Prior cardinality mismatch"},
		{func(p *ModelParams) { p.LogLikelihoods = p.LogLikelihoods[:2] }, "Likelihood row count mismatch"},
		{func(p *ModelParams) { p.LogLikelihoods[3] = p.LogLikelihoods[3][:5] }, "Likelihood row width mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			params := testParams()
			tt.mutate(&params)
			if _, err := ModelFromParams("bad", params); !errors.Is(err, ErrMalformedModel) {
				t.Errorf("Expected ErrMalformedModel, got %v", err)
			}
		})
	}
}
