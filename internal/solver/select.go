package solver

import (
	"fmt"
	"sort"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/priors"
)

// Ranked is an allowed guess with its policy score.
type Ranked struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Scores returns one score per allowed guess, in allowed-list order.
// Higher is better except under PolicyExpected.
func (e *Engine) Scores(p Policy, candidates []int, pm priors.Map) ([]float64, error) {
	if len(e.allowed) == 0 {
		return nil, fmt.Errorf("%w: no allowed guesses", errs.ErrEmptyInput)
	}
	if err := e.checkCandidates(candidates); err != nil {
		return nil, err
	}
	switch p {
	case PolicyFrequency:
		return e.frequencyScores(candidates), nil
	case PolicyEntropy:
		if err := e.requireMatrix(p); err != nil {
			return nil, err
		}
		return e.entropyScores(candidates, pm)
	case PolicyExpected:
		if err := e.requireMatrix(p); err != nil {
			return nil, err
		}
		return e.expectedScores(candidates, pm)
	}
	return nil, fmt.Errorf("%w: unknown policy %q", errs.ErrInvalidInput, p)
}

// frequencyScores sums, over each guess's distinct letters, how often the
// letter occurs across the candidate answers.
func (e *Engine) frequencyScores(candidates []int) []float64 {
	var freq [26]int
	for _, a := range candidates {
		for _, c := range e.answerCodes[a] {
			freq[c]++
		}
	}
	scores := make([]float64, len(e.allowed))
	for i, w := range e.allowed {
		var seen uint32
		s := 0
		for j := 0; j < len(w); j++ {
			c := w[j] - 'a'
			if c >= 26 || seen&(1<<c) != 0 {
				continue
			}
			seen |= 1 << c
			s += freq[c]
		}
		scores[i] = float64(s)
	}
	return scores
}

func (e *Engine) entropyScores(candidates []int, pm priors.Map) ([]float64, error) {
	weights, err := e.Weights(candidates, pm)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, e.m.Rows())
	for g := range scores {
		h, err := e.m.Distribution(g, candidates, weights)
		if err != nil {
			return nil, err
		}
		scores[g] = Entropy(h[:])
	}
	return scores, nil
}

func (e *Engine) expectedScores(candidates []int, pm priors.Map) ([]float64, error) {
	weights, err := e.Weights(candidates, pm)
	if err != nil {
		return nil, err
	}
	h0 := Entropy(weights)

	// probability that a word is the answer; a word listed twice sums
	// the weight of every candidate copy
	pAnswer := make(map[string]float64, len(candidates))
	for k, a := range candidates {
		pAnswer[e.answers[a]] += weights[k]
	}

	scores := make([]float64, e.m.Rows())
	for g := range scores {
		h, err := e.m.Distribution(g, candidates, weights)
		if err != nil {
			return nil, err
		}
		scores[g] = expectedScore(pAnswer[e.allowed[g]], h0, Entropy(h[:]))
	}
	return scores, nil
}

// best returns the index of the best score; the first one wins ties.
func best(p Policy, scores []float64) int {
	bi := 0
	for i := 1; i < len(scores); i++ {
		if p.minimises() {
			if scores[i] < scores[bi] {
				bi = i
			}
		} else if scores[i] > scores[bi] {
			bi = i
		}
	}
	return bi
}

// Select returns the best allowed guess under p.
func (e *Engine) Select(p Policy, candidates []int, pm priors.Map) (string, error) {
	if len(candidates) == 0 {
		return "", errs.ErrContradiction
	}
	scores, err := e.Scores(p, candidates, pm)
	if err != nil {
		return "", err
	}
	return e.allowed[best(p, scores)], nil
}

// Rank returns the top k guesses under p, best first. Ties keep
// allowed-list order, so Rank(...)[0] is what Select returns.
func (e *Engine) Rank(p Policy, candidates []int, pm priors.Map, k int) ([]Ranked, error) {
	if len(candidates) == 0 {
		return nil, errs.ErrContradiction
	}
	scores, err := e.Scores(p, candidates, pm)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := scores[order[i]], scores[order[j]]
		if p.minimises() {
			return a < b
		}
		return a > b
	})
	k = max(0, min(k, len(order)))
	out := make([]Ranked, k)
	for i := 0; i < k; i++ {
		out[i] = Ranked{Word: e.allowed[order[i]], Score: scores[order[i]]}
	}
	return out, nil
}
