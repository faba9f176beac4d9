package solver

import (
	"github.com/robalobadob/wordle-solver/internal/priors"
)

// DefaultSampleSize is how many remaining answers a Suggestion lists.
const DefaultSampleSize = 20

// Request is one next-guess query.
type Request struct {
	Constraints []Constraint
	Policy      Policy
	Priors      priors.Map
	// SampleSize caps Suggestion.Sample; 0 means DefaultSampleSize.
	SampleSize int
	// Top, if > 0, also returns the best Top guesses with scores.
	Top int
}

// Suggestion is the answer to a Request.
type Suggestion struct {
	NextGuess     string   `json:"nextGuess,omitempty"`
	PossibleCount int      `json:"possibleCount"`
	Sample        []string `json:"sample"`
	Policy        Policy   `json:"method,omitempty"`
	// Ranked is false when the guess was not chosen by a policy (single
	// remaining candidate).
	Ranked bool     `json:"ranked"`
	Top    []Ranked `json:"top,omitempty"`
	// Contradiction is set when no answer fits the constraints.
	Contradiction bool `json:"-"`
}

// Suggest reduces the candidates and picks the next guess.
//
//   - no candidates left → Contradiction, no guess, no error.
//   - one candidate left → that word, without consulting the policy.
//   - otherwise          → the policy's best guess.
func (e *Engine) Suggest(req Request) (Suggestion, error) {
	cands, err := e.Reduce(req.Constraints)
	if err != nil {
		return Suggestion{}, err
	}
	n := req.SampleSize
	if n <= 0 {
		n = DefaultSampleSize
	}
	out := Suggestion{
		PossibleCount: len(cands),
		Sample:        e.sample(cands, n),
	}

	switch len(cands) {
	case 0:
		out.Contradiction = true
		return out, nil
	case 1:
		out.NextGuess = e.answers[cands[0]]
		return out, nil
	}

	p := req.Policy
	if p == "" {
		p = PolicyFrequency
	}
	if req.Top > 0 {
		top, err := e.Rank(p, cands, req.Priors, req.Top)
		if err != nil {
			return Suggestion{}, err
		}
		out.Top = top
		out.NextGuess = top[0].Word
	} else {
		guess, err := e.Select(p, cands, req.Priors)
		if err != nil {
			return Suggestion{}, err
		}
		out.NextGuess = guess
	}
	out.Policy = p
	out.Ranked = true
	return out, nil
}
