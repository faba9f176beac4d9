// internal/solver/engine.go
//
// Solver engine: candidate reduction and guess selection over an immutable
// vocabulary.
//
// Responsibilities:
//   - Hold the allowed-guess list, the possible-answer list, their letter
//     codes, and (optionally) the precomputed pattern matrix.
//   - Reduce the answer set from observed (guess, pattern) constraints.
//   - Rank allowed guesses by letter frequency, entropy or expected score.
//
// Notes:
//   - An Engine is built once at startup and never mutated; every query works
//     on request-scoped slices, so concurrent queries need no locking.
//   - Without a matrix the entropy and expected policies are unavailable
//     (errs.ErrUnsupported); frequency always works.

package solver

import (
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/matrix"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Engine is the immutable solver state shared by all queries.
type Engine struct {
	allowed     words.List
	answers     words.List
	answerCodes []pattern.WordCode
	m           *matrix.Matrix // nil when no precomputed matrix is available
}

// NewEngine validates the lists and wraps them with an optional matrix.
// A non-nil m must have been built from the same lists.
func NewEngine(allowed, answers words.List, m *matrix.Matrix) (*Engine, error) {
	if len(allowed) == 0 {
		return nil, fmt.Errorf("%w: allowed word list is empty", errs.ErrEmptyInput)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answer word list is empty", errs.ErrEmptyInput)
	}
	if m != nil && (m.Rows() != len(allowed) || m.Cols() != len(answers)) {
		return nil, fmt.Errorf("%w: matrix is %d×%d, word lists are %d×%d",
			errs.ErrSizeMismatch, m.Rows(), m.Cols(), len(allowed), len(answers))
	}

	codes := make([]pattern.WordCode, len(answers))
	for i, w := range answers {
		wc, err := pattern.Encode(w)
		if err != nil {
			return nil, fmt.Errorf("answers[%d]: %w", i, err)
		}
		codes[i] = wc
	}
	return &Engine{allowed: allowed, answers: answers, answerCodes: codes, m: m}, nil
}

// HasMatrix reports whether the precomputed matrix is loaded.
func (e *Engine) HasMatrix() bool { return e.m != nil }

// Allowed returns the allowed-guess list.
func (e *Engine) Allowed() words.List { return e.allowed }

// Answers returns the possible-answer list.
func (e *Engine) Answers() words.List { return e.answers }

// AllCandidates returns every answer index, in order.
func (e *Engine) AllCandidates() []int {
	out := make([]int, len(e.answers))
	for i := range out {
		out[i] = i
	}
	return out
}

// Status summarises a candidate set.
type Status struct {
	CandidateCount int      `json:"candidateCount"`
	SampleWords    []string `json:"sampleWords"`
	HasMatrix      bool     `json:"hasPrecomputedMatrix"`
}

// Status reports the size of candidates and its first n words.
func (e *Engine) Status(candidates []int, n int) Status {
	return Status{
		CandidateCount: len(candidates),
		SampleWords:    e.sample(candidates, n),
		HasMatrix:      e.HasMatrix(),
	}
}

func (e *Engine) sample(candidates []int, n int) []string {
	n = max(0, min(n, len(candidates)))
	out := make([]string, 0, n)
	for _, a := range candidates[:n] {
		if a >= 0 && a < len(e.answers) {
			out = append(out, e.answers[a])
		}
	}
	return out
}

func (e *Engine) checkCandidates(candidates []int) error {
	for k, a := range candidates {
		if a < 0 || a >= len(e.answers) {
			return fmt.Errorf("%w: candidate[%d]=%d not in [0,%d)", errs.ErrIndexOutOfRange, k, a, len(e.answers))
		}
	}
	return nil
}
