package solver

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/matrix"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/priors"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func newEngine(t *testing.T, allowed, answers words.List, withMatrix bool) *Engine {
	t.Helper()
	var m *matrix.Matrix
	if withMatrix {
		var buf bytes.Buffer
		require.NoError(t, matrix.Build(&buf, allowed, answers, matrix.BuildOptions{BatchSize: 2}))
		var err error
		m, err = matrix.New(allowed, answers, buf.Bytes())
		require.NoError(t, err)
	}
	e, err := NewEngine(allowed, answers, m)
	require.NoError(t, err)
	return e
}

func code(t *testing.T, guess, answer string) int {
	t.Helper()
	p, err := pattern.ScoreWords(guess, answer)
	require.NoError(t, err)
	return int(p.Code())
}

func TestNewEngineErrors(t *testing.T) {
	_, err := NewEngine(nil, words.List{"crane"}, nil)
	assert.ErrorIs(t, err, errs.ErrEmptyInput)
	_, err = NewEngine(words.List{"crane"}, nil, nil)
	assert.ErrorIs(t, err, errs.ErrEmptyInput)

	m := newEngine(t, words.List{"crane", "slate"}, words.List{"crane"}, true).m
	_, err = NewEngine(words.List{"crane"}, words.List{"crane"}, m)
	assert.ErrorIs(t, err, errs.ErrSizeMismatch)
}

// allowed=["abcde","fghij","klmno"], answers=["abcde","fghij"].
func TestEndToEndSingleCandidateShortCircuits(t *testing.T) {
	allowed := words.List{"abcde", "fghij", "klmno"}
	answers := words.List{"abcde", "fghij"}

	for _, withMatrix := range []bool{true, false} {
		e := newEngine(t, allowed, answers, withMatrix)
		cons := []Constraint{{Guess: "abcde", Pattern: int(pattern.Solved)}}

		cands, err := e.Reduce(cons)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, cands)

		// a matrix-only policy on a matrix-less engine would fail if it ran
		s, err := e.Suggest(Request{Constraints: cons, Policy: PolicyEntropy})
		require.NoError(t, err)
		assert.Equal(t, "abcde", s.NextGuess)
		assert.False(t, s.Ranked)
		assert.Equal(t, 1, s.PossibleCount)
		assert.Equal(t, []string{"abcde"}, s.Sample)
	}
}

var (
	parityAllowed = words.List{"crane", "slate", "sassy", "abcde", "eerie", "speed", "zebra", "there"}
	parityAnswers = words.List{"swiss", "crane", "there", "abide", "edcba", "slate", "sassy", "erase"}
)

func TestReduceMatrixAndFallbackAgree(t *testing.T) {
	withM := newEngine(t, parityAllowed, parityAnswers, true)
	without := newEngine(t, parityAllowed, parityAnswers, false)
	guesses := append(words.List{"quick", "essay"}, parityAllowed...)

	for secretIdx, secret := range parityAnswers {
		for _, g1 := range guesses {
			for _, g2 := range []string{"slate", "vivid"} {
				cons := []Constraint{
					{Guess: g1, Pattern: code(t, g1, secret)},
					{Guess: g2, Pattern: code(t, g2, secret)},
				}
				a, err := withM.Reduce(cons)
				require.NoError(t, err)
				b, err := without.Reduce(cons)
				require.NoError(t, err)
				assert.Equal(t, a, b, "%s then %s for %s", g1, g2, secret)
				assert.Contains(t, a, secretIdx)
			}
		}
	}
}

func TestReduceIsOrderPreservingAndShrinking(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)
	prev := e.AllCandidates()
	secret := "erase"
	for _, g := range []string{"crane", "speed", "there"} {
		cons := []Constraint{{Guess: g, Pattern: code(t, g, secret)}}
		next, err := e.m.Filter(e.m.GuessIndex(g), pattern.Code(cons[0].Pattern), prev)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(next), len(prev))
		for i := 1; i < len(next); i++ {
			assert.Less(t, next[i-1], next[i])
		}
		prev = next
	}
}

func TestReduceNormalizesGuess(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)
	a, err := e.Reduce([]Constraint{{Guess: " CRANE ", Pattern: code(t, "crane", "slate")}})
	require.NoError(t, err)
	b, err := e.Reduce([]Constraint{{Guess: "crane", Pattern: code(t, "crane", "slate")}})
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestReduceErrors(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)

	_, err := e.Reduce([]Constraint{{Guess: "crane", Pattern: 243}})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = e.Reduce([]Constraint{{Guess: "crane", Pattern: -1}})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = e.Reduce([]Constraint{{Guess: "cr4ne", Pattern: 0}})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestReduceContradiction(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)
	cons := []Constraint{
		{Guess: "crane", Pattern: int(pattern.Solved)},
		{Guess: "slate", Pattern: int(pattern.Solved)},
	}
	cands, err := e.Reduce(cons)
	require.NoError(t, err)
	assert.NotNil(t, cands)
	assert.Empty(t, cands)

	s, err := e.Suggest(Request{Constraints: cons, Policy: PolicyExpected})
	require.NoError(t, err)
	assert.True(t, s.Contradiction)
	assert.Equal(t, 0, s.PossibleCount)
	assert.Empty(t, s.NextGuess)
	assert.Empty(t, s.Sample)

	_, err = e.Select(PolicyFrequency, cands, nil)
	assert.ErrorIs(t, err, errs.ErrContradiction)
}

func TestWeights(t *testing.T) {
	e := newEngine(t, words.List{"crane"}, words.List{"crane", "crate", "trace"}, false)

	w, err := e.Weights([]int{0, 1, 2}, priors.Map{"crane": 3, "crate": 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.75, 0.25, 0}, w, 1e-12)

	// zero total → uniform
	w, err = e.Weights([]int{1, 2}, priors.Map{"crane": 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, w, 1e-12)

	w, err = e.Weights([]int{0, 2}, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, w, 1e-12)

	_, err = e.Weights([]int{3}, nil)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil))
	assert.Equal(t, 0.0, Entropy([]float64{1, 0, 0}))
	assert.InDelta(t, 1.0, Entropy([]float64{0.5, 0, 0.5}), 1e-12)

	uniform := make([]float64, pattern.Count)
	for i := range uniform {
		uniform[i] = 1.0 / pattern.Count
	}
	maxH := math.Log2(pattern.Count)
	assert.InDelta(t, maxH, Entropy(uniform), 1e-9)

	skewed := make([]float64, pattern.Count)
	skewed[0], skewed[7], skewed[242] = 0.7, 0.2, 0.1
	h := Entropy(skewed)
	assert.GreaterOrEqual(t, h, 0.0)
	assert.LessOrEqual(t, h, maxH)
	assert.False(t, math.IsNaN(h))
}

func TestExpectedExtra(t *testing.T) {
	assert.InDelta(t, 1.0, expectedExtra(0), 1e-12)
	b := 3.0
	want := math.Pow(2, -b) + 2*(1-math.Pow(2, -b)) + 1.5*b/11.5
	assert.InDelta(t, want, expectedExtra(b), 1e-12)
	// residual is clamped at zero
	assert.InDelta(t, 2.0, expectedScore(0, 1, 1.5), 1e-12)
	// a certain answer scores exactly 1
	assert.Equal(t, 1.0, expectedScore(1, 4, 0))
}

func TestFrequencyPolicy(t *testing.T) {
	answers := words.List{"crane", "crate", "trace"}
	e := newEngine(t, words.List{"zzzzz", "eerie", "crate", "aaaaa"}, answers, false)

	scores, err := e.Scores(PolicyFrequency, e.AllCandidates(), nil)
	require.NoError(t, err)
	// letter counts: c3 r3 a3 e3 t2 n1; duplicate letters in a guess count once
	assert.Equal(t, []float64{0, 6, 14, 3}, scores)

	g, err := e.Select(PolicyFrequency, e.AllCandidates(), nil)
	require.NoError(t, err)
	assert.Equal(t, "crate", g)

	// ties resolve to the first allowed word
	e = newEngine(t, words.List{"trace", "crate"}, answers, false)
	g, err = e.Select(PolicyFrequency, e.AllCandidates(), nil)
	require.NoError(t, err)
	assert.Equal(t, "trace", g)
}

func TestMatrixPoliciesUnsupportedWithoutMatrix(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, false)
	for _, p := range []Policy{PolicyEntropy, PolicyExpected} {
		_, err := e.Select(p, e.AllCandidates(), nil)
		assert.ErrorIs(t, err, errs.ErrUnsupported, p)
		assert.True(t, p.NeedsMatrix())
	}
	assert.False(t, PolicyFrequency.NeedsMatrix())
}

func TestEntropyPolicy(t *testing.T) {
	answers := words.List{"crane", "crate", "trace"}
	e := newEngine(t, words.List{"zzzzz", "crane", "yyyyy"}, answers, true)

	scores, err := e.Scores(PolicyEntropy, e.AllCandidates(), priors.Uniform(answers))
	require.NoError(t, err)
	assert.InDelta(t, 0, scores[0], 1e-12)
	assert.InDelta(t, math.Log2(3), scores[1], 1e-12)
	assert.InDelta(t, 0, scores[2], 1e-12)

	g, err := e.Select(PolicyEntropy, e.AllCandidates(), nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", g)

	// all-zero entropies: first allowed word wins
	g, err = e.Select(PolicyEntropy, []int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "zzzzz", g)
}

func TestExpectedPolicy(t *testing.T) {
	answers := words.List{"crane", "crate", "trace"}
	e := newEngine(t, words.List{"zzzzz", "crane"}, answers, true)

	scores, err := e.Scores(PolicyExpected, e.AllCandidates(), nil)
	require.NoError(t, err)
	// zzzzz learns nothing: residual = log2(3), not an answer
	assert.InDelta(t, 1+expectedExtra(math.Log2(3)), scores[0], 1e-12)
	// crane splits all three: residual 0, answer with p=1/3
	assert.InDelta(t, 1.0/3+2.0/3*2, scores[1], 1e-12)

	g, err := e.Select(PolicyExpected, e.AllCandidates(), nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", g)
}

func TestExpectedPolicyPrefersCertainAnswer(t *testing.T) {
	answers := words.List{"crane", "crate", "trace"}
	e := newEngine(t, words.List{"crane", "zzzzz", "crate"}, answers, true)

	// crate is the only candidate: its score is exactly 1, everything else is worse
	scores, err := e.Scores(PolicyExpected, []int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[2])
	assert.Greater(t, scores[0], 1.0)
	assert.Greater(t, scores[1], 1.0)

	g, err := e.Select(PolicyExpected, []int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "crate", g)
}

func TestPriorsShiftExpectedChoice(t *testing.T) {
	answers := words.List{"crane", "crate"}
	// neither guess distinguishes better than the other; the prior decides
	e := newEngine(t, words.List{"crane", "crate"}, answers, true)

	g, err := e.Select(PolicyExpected, e.AllCandidates(), priors.Map{"crane": 1, "crate": 9})
	require.NoError(t, err)
	assert.Equal(t, "crate", g)

	g, err = e.Select(PolicyExpected, e.AllCandidates(), priors.Map{"crane": 9, "crate": 1})
	require.NoError(t, err)
	assert.Equal(t, "crane", g)
}

func TestRankMatchesSelect(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)
	cands := e.AllCandidates()
	for _, p := range Policies {
		top, err := e.Rank(p, cands, nil, 3)
		require.NoError(t, err)
		require.Len(t, top, 3)
		g, err := e.Select(p, cands, nil)
		require.NoError(t, err)
		assert.Equal(t, g, top[0].Word, p)
		for i := 1; i < len(top); i++ {
			if p == PolicyExpected {
				assert.LessOrEqual(t, top[i-1].Score, top[i].Score)
			} else {
				assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
			}
		}
	}

	all, err := e.Rank(PolicyFrequency, cands, nil, 100)
	require.NoError(t, err)
	assert.Len(t, all, len(parityAllowed))
}

func TestSuggestUsesPolicyAndSample(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, true)
	s, err := e.Suggest(Request{Policy: PolicyEntropy, SampleSize: 3, Top: 2})
	require.NoError(t, err)
	assert.True(t, s.Ranked)
	assert.Equal(t, PolicyEntropy, s.Policy)
	assert.Equal(t, len(parityAnswers), s.PossibleCount)
	assert.Equal(t, []string{"swiss", "crane", "there"}, s.Sample)
	require.Len(t, s.Top, 2)
	assert.Equal(t, s.Top[0].Word, s.NextGuess)

	// default policy is frequency
	s, err = e.Suggest(Request{})
	require.NoError(t, err)
	assert.Equal(t, PolicyFrequency, s.Policy)
	assert.Len(t, s.Sample, len(parityAnswers))
}

func TestStatus(t *testing.T) {
	e := newEngine(t, parityAllowed, parityAnswers, false)
	st := e.Status(e.AllCandidates(), 2)
	assert.Equal(t, Status{CandidateCount: len(parityAnswers), SampleWords: []string{"swiss", "crane"}, HasMatrix: false}, st)

	st = e.Status([]int{}, 5)
	assert.Equal(t, 0, st.CandidateCount)
	assert.Empty(t, st.SampleWords)
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"fast":      PolicyFrequency,
		"frequency": PolicyFrequency,
		"Entropy":   PolicyEntropy,
		" expected": PolicyExpected,
	} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePolicy("random")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestAvailable(t *testing.T) {
	with := newEngine(t, parityAllowed, parityAnswers, true)
	without := newEngine(t, parityAllowed, parityAnswers, false)
	assert.Equal(t, PolicyExpected, with.Available(PolicyExpected))
	assert.Equal(t, PolicyFrequency, without.Available(PolicyExpected))
	assert.Equal(t, PolicyFrequency, without.Available(PolicyEntropy))
}

func TestExpectedPolicyDuplicateAnswerUsesLaterCopy(t *testing.T) {
	// crane is listed twice; only its second copy is still a candidate
	answers := words.List{"crane", "crate", "crane"}
	e := newEngine(t, words.List{"zzzzz", "crane"}, answers, true)

	scores, err := e.Scores(PolicyExpected, []int{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[1])
	assert.Greater(t, scores[0], 1.0)

	g, err := e.Select(PolicyExpected, []int{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", g)
}
