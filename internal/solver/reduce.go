package solver

import (
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Constraint is one observed turn: the guess played and the feedback code.
type Constraint struct {
	Guess   string
	Pattern int
}

// Reduce applies constraints in order, starting from every answer.
//
// A guess with a matrix row is filtered through the matrix; any other guess
// (or every guess when there is no matrix) is scored directly against each
// surviving answer. Both paths give the same result. An empty result means
// the constraints contradict each other; it is not an error.
func (e *Engine) Reduce(constraints []Constraint) ([]int, error) {
	cands := e.AllCandidates()
	for i, c := range constraints {
		if c.Pattern < 0 || c.Pattern >= pattern.Count {
			return nil, fmt.Errorf("%w: constraint %d: pattern code %d outside [0,%d)",
				errs.ErrInvalidInput, i, c.Pattern, pattern.Count)
		}
		guess := words.Normalize(c.Guess)
		code := pattern.Code(c.Pattern)

		var err error
		if g := e.guessRow(guess); g >= 0 {
			cands, err = e.m.Filter(g, code, cands)
		} else {
			cands, err = e.filterByScore(guess, code, cands)
		}
		if err != nil {
			return nil, fmt.Errorf("constraint %d (%s): %w", i, guess, err)
		}
	}
	if cands == nil {
		cands = []int{}
	}
	return cands, nil
}

func (e *Engine) guessRow(guess string) int {
	if e.m == nil {
		return -1
	}
	return e.m.GuessIndex(guess)
}

func (e *Engine) filterByScore(guess string, code pattern.Code, cands []int) ([]int, error) {
	gc, err := pattern.Encode(guess)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, a := range cands {
		if pattern.ScoreCode(gc, e.answerCodes[a]) == code {
			out = append(out, a)
		}
	}
	return out, nil
}
