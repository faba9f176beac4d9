package solver

import (
	"fmt"
	"math"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/priors"
)

// Weights turns the candidates' prior weights into a probability vector
// aligned with candidates. If they sum to 0 the distribution is uniform.
func (e *Engine) Weights(candidates []int, pm priors.Map) ([]float64, error) {
	if err := e.checkCandidates(candidates); err != nil {
		return nil, err
	}
	w := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return w, nil
	}
	sum := 0.0
	for k, a := range candidates {
		w[k] = pm.Weight(e.answers[a])
		sum += w[k]
	}
	if sum == 0 {
		u := 1 / float64(len(candidates))
		for k := range w {
			w[k] = u
		}
		return w, nil
	}
	for k := range w {
		w[k] /= sum
	}
	return w, nil
}

// Entropy returns the Shannon entropy in bits; buckets with p <= 0 add nothing.
func Entropy(dist []float64) float64 {
	h := 0.0
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Empirically fitted constants of the expected-extra-guesses model.
const (
	extraSlope = 1.5
	extraScale = 11.5
)

// expectedExtra maps residual uncertainty in bits to expected additional
// guesses: 2^-b + 2(1-2^-b) + 1.5b/11.5.
func expectedExtra(bits float64) float64 {
	p := math.Pow(2, -bits)
	return p + 2*(1-p) + extraSlope*bits/extraScale
}

// expectedScore combines the chance that the guess is the answer with the
// expected cost of continuing after it.
func expectedScore(probIsAnswer, h0, h1 float64) float64 {
	residual := math.Max(0, h0-h1)
	return probIsAnswer + (1-probIsAnswer)*(1+expectedExtra(residual))
}

func (e *Engine) requireMatrix(p Policy) error {
	if e.m == nil {
		return fmt.Errorf("%w: policy %q", errs.ErrUnsupported, p)
	}
	return nil
}
