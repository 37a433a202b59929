// Package emotion classifies short free-text into one of five emotion
// categories (happiness, anger, sadness, stress, neutral) and returns a
// calibrated confidence distribution over all of them.
//
// The pipeline is deterministic and stateless: text is normalized to tokens,
// projected onto a fixed TF-IDF feature space, and scored by a multinomial
// naive Bayes model loaded once from a trained artifact. For example,
//
//	model, err := emotion.ModelFromDisk("model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred := emotion.NewPredictor(model).Predict("I am so happy today!")
package emotion

import "strings"

// A Predictor runs the full text-to-emotion pipeline. It holds only
// read-only model state, so a single Predictor serves concurrent calls
// without coordination.
type Predictor struct {
	normalizer *Normalizer
	vectorizer *Vectorizer
	classifier *classifier
}

type PredictorOptFunc func(*Predictor)

// UsingNormalizer replaces the default normalizer. The replacement must
// produce tokens compatible with the model's vocabulary.
func UsingNormalizer(n *Normalizer) PredictorOptFunc {
	return func(p *Predictor) {
		p.normalizer = n
	}
}

// NewPredictor builds a Predictor over a loaded model.
func NewPredictor(model *Model, opts ...PredictorOptFunc) *Predictor {
	p := &Predictor{
		normalizer: NewNormalizer(),
		vectorizer: newVectorizer(model.vocabulary, model.idf),
		classifier: &classifier{
			labels:      model.labels,
			logPriors:   model.logPriors,
			likelihoods: model.likelihoods,
		},
	}
	for _, applyOpt := range opts {
		applyOpt(p)
	}
	return p
}

// Predict classifies a single text. Input that normalizes to no tokens is
// still classified; the distribution then falls back to the class priors.
func (p *Predictor) Predict(text string) Prediction {
	tokens := p.normalizer.Normalize(text)
	features := p.vectorizer.Vectorize(tokens)
	label, probs := p.classifier.classify(features)

	return Prediction{
		Emotion:       label,
		Confidence:    probs[label],
		Probabilities: probs,
		Details:       label.Details(),
		Text:          text,
		ProcessedText: strings.Join(tokens, " "),
	}
}

// PredictBatch classifies each text independently. Results are identical to
// calling Predict once per element.
func (p *Predictor) PredictBatch(texts []string) []Prediction {
	results := make([]Prediction, len(texts))
	for i, text := range texts {
		results[i] = p.Predict(text)
	}
	return results
}
