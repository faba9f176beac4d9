// internal/pattern/pattern.go
//
// Feedback pattern codec.
//
// A Pattern is five per-position digits: Miss=0, Misplaced=1, Exact=2.
// Its integer Code is little-endian base 3:
//
//	pos:    0   1   2   3   4
//	digit: d0  d1  d2  d3  d4
//	code = d0*1 + d1*3 + d2*9 + d3*27 + d4*81
//
// so every pattern fits in [0, 243) and in a single byte.

package pattern

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/errs"
)

const (
	// WordLen is the number of letters per word.
	WordLen = 5
	// Count is the size of the pattern space, 3^WordLen.
	Count = 243
	// Solved is the code of the all-exact pattern.
	Solved Code = Count - 1
)

// Digit is the feedback for a single position.
type Digit uint8

const (
	Miss      Digit = 0
	Misplaced Digit = 1
	Exact     Digit = 2
)

// Pattern is the per-position feedback of a guess against an answer.
type Pattern [WordLen]Digit

// Code is the base-3 integer form of a Pattern.
type Code uint8

// WordCode is a word as letter indices 0..25.
type WordCode [WordLen]uint8

// pow3[i] = 3^i
var pow3 = [WordLen]int{1, 3, 9, 27, 81}

// Encode converts a word into its WordCode.
func Encode(word string) (WordCode, error) {
	var wc WordCode
	if len(word) != WordLen {
		return wc, fmt.Errorf("%w: word %q must have %d letters", errs.ErrInvalidInput, word, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return wc, fmt.Errorf("%w: word %q has a character outside a-z", errs.ErrInvalidInput, word)
		}
		wc[i] = c - 'a'
	}
	return wc, nil
}

// ToInt encodes p as a Code.
func ToInt(p Pattern) (Code, error) {
	v := 0
	for i, d := range p {
		if d > Exact {
			return 0, fmt.Errorf("%w: pattern digit %d at position %d", errs.ErrInvalidInput, d, i)
		}
		v += int(d) * pow3[i]
	}
	return Code(v), nil
}

// FromInt decodes n into a Pattern. n must be in [0, Count).
func FromInt(n int) (Pattern, error) {
	var p Pattern
	if n < 0 || n >= Count {
		return p, fmt.Errorf("%w: pattern code %d outside [0,%d)", errs.ErrInvalidInput, n, Count)
	}
	for i := 0; i < WordLen; i++ {
		p[i] = Digit(n % 3)
		n /= 3
	}
	return p, nil
}

// Code returns the integer form of a Pattern built by Score or FromInt.
// Digits are assumed valid.
func (p Pattern) Code() Code {
	v := 0
	for i, d := range p {
		v += int(d) * pow3[i]
	}
	return Code(v)
}

// Solved reports whether every position is Exact.
func (p Pattern) Solved() bool {
	for _, d := range p {
		if d != Exact {
			return false
		}
	}
	return true
}

// String renders the digit form, e.g. "20120".
func (p Pattern) String() string {
	var b strings.Builder
	for _, d := range p {
		b.WriteByte('0' + byte(d))
	}
	return b.String()
}

// Score computes the feedback for guess against answer.
//
// Exact matches are marked first and consume their answer position. Then each
// remaining guess position, left to right, takes the leftmost unconsumed
// answer position holding the same letter (Misplaced), or is a Miss. The
// order matters when the guess repeats a letter more often than the answer.
func Score(guess, answer WordCode) Pattern {
	var p Pattern
	var used uint8
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = Exact
			used |= 1 << i
		}
	}
	for i := 0; i < WordLen; i++ {
		if p[i] == Exact {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if used&(1<<j) != 0 || answer[j] != guess[i] {
				continue
			}
			p[i] = Misplaced
			used |= 1 << j
			break
		}
	}
	return p
}

// ScoreCode is Score followed by Code.
func ScoreCode(guess, answer WordCode) Code {
	return Score(guess, answer).Code()
}

// ScoreWords encodes both words and scores them.
func ScoreWords(guess, answer string) (Pattern, error) {
	g, err := Encode(guess)
	if err != nil {
		return Pattern{}, err
	}
	a, err := Encode(answer)
	if err != nil {
		return Pattern{}, err
	}
	return Score(g, a), nil
}

// Parse reads a pattern written as five digits ("20100") or five colour
// letters ("gybbb"; b, x or . for miss, y for misplaced, g for exact).
func Parse(s string) (Pattern, error) {
	var p Pattern
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: pattern %q must have %d positions", errs.ErrInvalidInput, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '0', 'b', 'x', '.':
			p[i] = Miss
		case '1', 'y':
			p[i] = Misplaced
		case '2', 'g':
			p[i] = Exact
		default:
			return p, fmt.Errorf("%w: pattern %q has unknown mark %q", errs.ErrInvalidInput, s, s[i])
		}
	}
	return p, nil
}
