// internal/priors/priors.go
//
// Prior weights over answer words.
//
// A Map gives each answer a non-negative weight; a word that is absent has
// weight 0. The solver normalises weights over the current candidates, so
// only relative sizes matter.
//
// File format (one pair per line, separated by whitespace):
//
//	crane 1250
//	slate 980
//	irate          # weight omitted → 1
//
// Blank lines and '#' comments are skipped, lines whose word is not a valid
// 5-letter word are dropped, and a bad weight is an error.

package priors

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Map is word → weight.
type Map map[string]float64

// Uniform gives every word weight 1.
func Uniform(list words.List) Map {
	m := make(Map, len(list))
	for _, w := range list {
		m[w] = 1
	}
	return m
}

// Weight returns the weight of w; missing and negative weights count as 0.
func (m Map) Weight(w string) float64 {
	v := m[w]
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Parse reads word/weight lines.
func Parse(r io.Reader) (Map, error) {
	m := make(Map)
	line := 0
	err := words.EachLine(r, func(text string) error {
		line++
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			return nil
		}
		w := words.Normalize(fields[0])
		if !words.IsWord(w) {
			return nil
		}
		weight := 1.0
		if len(fields) > 1 {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: line %d: weight %q for %q", errs.ErrInvalidInput, line, fields[1], w)
			}
			weight = v
		}
		m[w] = weight
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ReadFile loads a priors file.
func ReadFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
