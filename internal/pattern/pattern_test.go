package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/errs"
)

func TestRoundTripAllDigitTuples(t *testing.T) {
	seen := make(map[Code]bool, Count)
	var p Pattern
	for n := 0; n < Count; n++ {
		// enumerate {0,1,2}^5 independently of FromInt
		v := n
		for i := range p {
			p[i] = Digit(v % 3)
			v /= 3
		}
		c, err := ToInt(p)
		require.NoError(t, err)
		assert.False(t, seen[c], "duplicate code %d", c)
		seen[c] = true

		back, err := FromInt(int(c))
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
	assert.Len(t, seen, Count)
}

func TestRoundTripAllCodes(t *testing.T) {
	for n := 0; n < Count; n++ {
		p, err := FromInt(n)
		require.NoError(t, err)
		c, err := ToInt(p)
		require.NoError(t, err)
		assert.Equal(t, n, int(c))
		assert.Equal(t, c, p.Code())
	}
}

func TestCodecRejectsOutOfDomain(t *testing.T) {
	_, err := FromInt(-1)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = FromInt(Count)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	_, err = ToInt(Pattern{0, 1, 3, 0, 0})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEncode(t *testing.T) {
	wc, err := Encode("azbyc")
	require.NoError(t, err)
	assert.Equal(t, WordCode{0, 25, 1, 24, 2}, wc)

	for _, bad := range []string{"", "abcd", "abcdef", "Abcde", "ab-de", "ab de"} {
		_, err := Encode(bad)
		assert.ErrorIs(t, err, errs.ErrInvalidInput, bad)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          Pattern
		code          Code
	}{
		{"crane", "crane", Pattern{2, 2, 2, 2, 2}, 242},
		{"abcde", "edcba", Pattern{1, 1, 2, 1, 1}, 130},
		{"sassy", "swiss", Pattern{2, 0, 1, 2, 0}, 65},
		{"speed", "abide", Pattern{0, 0, 1, 0, 1}, 90},
		{"aaaaa", "abbbb", Pattern{2, 0, 0, 0, 0}, 2},
		{"abbbb", "aaaaa", Pattern{2, 0, 0, 0, 0}, 2},
		{"eerie", "there", Pattern{1, 0, 1, 0, 2}, 1 + 9 + 162},
		{"fghij", "abcde", Pattern{0, 0, 0, 0, 0}, 0},
	}
	for _, tt := range tests {
		got, err := ScoreWords(tt.guess, tt.answer)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.guess, tt.answer)
		assert.Equal(t, tt.code, got.Code(), "%s vs %s", tt.guess, tt.answer)
	}
}

// abcde vs edcba shares the middle letter, so position 2 is exact. The
// all-misplaced case needs no fixed point.
func TestScoreAllMisplaced(t *testing.T) {
	got, err := ScoreWords("abcde", "bcdea")
	require.NoError(t, err)
	assert.Equal(t, Pattern{1, 1, 1, 1, 1}, got)
	assert.Equal(t, Code(121), got.Code())
}

func TestScoreSelfIsSolved(t *testing.T) {
	for _, w := range []string{"crane", "sassy", "eerie", "aaaaa", "zebra"} {
		wc, err := Encode(w)
		require.NoError(t, err)
		p := Score(wc, wc)
		assert.True(t, p.Solved(), w)
		assert.Equal(t, Solved, ScoreCode(wc, wc), w)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Pattern
	}{
		{"20100", Pattern{2, 0, 1, 0, 0}},
		{"gybbb", Pattern{2, 1, 0, 0, 0}},
		{"GYX.B", Pattern{2, 1, 0, 0, 0}},
		{" 22222 ", Pattern{2, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"2010", "201000", "20130", "gyzbb"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, errs.ErrInvalidInput, bad)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "20120", Pattern{2, 0, 1, 2, 0}.String())
}
