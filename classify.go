package emotion

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// classifier scores feature vectors against the trained multinomial naive
// Bayes parameters. It holds read-only views into the Model and is safe for
// concurrent use.
type classifier struct {
	labels      []Emotion
	logPriors   []float64
	likelihoods *mat.Dense
}

// classify converts a feature vector into a percentage distribution over
// every class and returns the winner. The zero vector is valid: scores then
// collapse to the class priors.
func (c *classifier) classify(features *mat.VecDense) (Emotion, map[Emotion]float64) {
	scores := make([]float64, len(c.labels))
	for i := range c.labels {
		row := c.likelihoods.RowView(i)
		scores[i] = c.logPriors[i] + mat.Dot(row, features)
	}

	// Numerically stable softmax: shift by the max before exponentiating.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	exps := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		exps[i] = math.Exp(s - maxScore)
		sum += exps[i]
	}

	probs := make(map[Emotion]float64, len(c.labels))
	best := 0
	bestProb := -1.0
	for i, label := range c.labels {
		p := exps[i] / sum
		probs[label] = roundPercent(p * 100)
		// Exact ties break toward the canonical class order, not the
		// artifact's label order.
		if p > bestProb || (p == bestProb && label.rank() < c.labels[best].rank()) {
			best, bestProb = i, p
		}
	}
	return c.labels[best], probs
}

// roundPercent rounds to two decimal places.
func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
