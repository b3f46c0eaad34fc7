package lm

import (
	"math"
	"strings"
)

// DefaultSmoothing is the probability substituted for unseen pairs.
const DefaultSmoothing = 1e-2

// Scorer computes sentence perplexity under a bigram model.
type Scorer struct {
	Model     Model
	Smoothing float64
}

// NewScorer creates a scorer. A non-positive smoothing value falls back to
// DefaultSmoothing.
func NewScorer(m Model, smoothing float64) Scorer {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	return Scorer{Model: m, Smoothing: smoothing}
}

// Score returns the perplexity of a whitespace-separated sentence.
//
// Sentences with fewer than two words score 0. Otherwise the reciprocal
// pair probabilities are multiplied directly and the product is raised to
// 1/len(words), where len(words) counts words, not pairs.
func (s Scorer) Score(sentence string) float64 {
	words := strings.Fields(sentence)
	if len(words) < 2 {
		return 0
	}

	smoothing := s.Smoothing
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}

	product := 1.0
	for i := 0; i+1 < len(words); i++ {
		p, ok := s.Model.Prob(words[i], words[i+1])
		if !ok {
			p = smoothing
		}
		product *= 1 / p
	}
	return math.Pow(product, 1/float64(len(words)))
}

// Perplexity scores sentence against m with DefaultSmoothing.
func Perplexity(sentence string, m Model) float64 {
	return Scorer{Model: m, Smoothing: DefaultSmoothing}.Score(sentence)
}
