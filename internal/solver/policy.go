package solver

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/errs"
)

// Policy names a guess-ranking heuristic.
type Policy string

const (
	// PolicyFrequency favours guesses covering the letters most common among the
	// candidates. Needs no matrix.
	PolicyFrequency Policy = "frequency"
	// PolicyEntropy maximises the Shannon entropy of the feedback distribution.
	PolicyEntropy Policy = "entropy"
	// PolicyExpected minimises the estimated number of guesses still needed.
	PolicyExpected Policy = "expected"
)

// Policies lists every policy in display order.
var Policies = []Policy{PolicyFrequency, PolicyEntropy, PolicyExpected}

// ParsePolicy accepts a policy name; "fast" is an alias for frequency.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frequency", "fast", "freq":
		return PolicyFrequency, nil
	case "entropy":
		return PolicyEntropy, nil
	case "expected", "expected-score":
		return PolicyExpected, nil
	}
	return "", fmt.Errorf("%w: unknown policy %q", errs.ErrInvalidInput, s)
}

// NeedsMatrix reports whether p requires the precomputed matrix.
func (p Policy) NeedsMatrix() bool { return p == PolicyEntropy || p == PolicyExpected }

// minimises reports whether lower scores are better under p.
func (p Policy) minimises() bool { return p == PolicyExpected }

// Available returns p, or PolicyFrequency when p needs a matrix e lacks.
// It is meant for defaults; an explicitly requested policy should fail
// with errs.ErrUnsupported instead.
func (e *Engine) Available(p Policy) Policy {
	if p.NeedsMatrix() && !e.HasMatrix() {
		return PolicyFrequency
	}
	return p
}
