// internal/matrix/matrix.go
//
// Precomputed guess × answer pattern table.
//
// Layout:
//   - One byte per cell, row-major: offset = guessIndex*cols + answerIndex.
//   - Rows follow the allowed-guess list, columns the possible-answer list,
//     both in file order.
//   - No header. The file is only valid together with the exact word lists
//     it was built from; Load can detect a size mismatch, nothing more.
//
// A Matrix is immutable after New and safe to share between goroutines.

package matrix

import (
	"fmt"
	"os"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Histogram is a weight total per pattern code.
type Histogram [pattern.Count]float64

// Matrix holds the pattern table plus reverse word lookups.
type Matrix struct {
	allowed  words.List
	answers  words.List
	rows     int
	cols     int
	data     []byte
	guessIdx map[string]int
	answIdx  map[string]int
}

// New wraps data built from allowed × answers.
func New(allowed, answers words.List, data []byte) (*Matrix, error) {
	rows, cols := len(allowed), len(answers)
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: matrix has %d bytes, want %d×%d=%d (stale file or different word lists?)",
			errs.ErrSizeMismatch, len(data), rows, cols, rows*cols)
	}
	for i, b := range data {
		if int(b) >= pattern.Count {
			return nil, fmt.Errorf("%w: cell %d holds %d, not a pattern code", errs.ErrInvalidInput, i, b)
		}
	}
	return &Matrix{
		allowed:  allowed,
		answers:  answers,
		rows:     rows,
		cols:     cols,
		data:     data,
		guessIdx: allowed.Index(),
		answIdx:  answers.Index(),
	}, nil
}

// Load reads a matrix file built from the same word lists.
func Load(path string, allowed, answers words.List) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(allowed, answers, data)
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }
func (m *Matrix) Size() int { return len(m.data) }

// Allowed returns the row word list.
func (m *Matrix) Allowed() words.List { return m.allowed }

// Answers returns the column word list.
func (m *Matrix) Answers() words.List { return m.answers }

// GuessIndex returns the row of word, or -1.
func (m *Matrix) GuessIndex(word string) int {
	if i, ok := m.guessIdx[word]; ok {
		return i
	}
	return -1
}

// AnswerIndex returns the column of word, or -1.
func (m *Matrix) AnswerIndex(word string) int {
	if i, ok := m.answIdx[word]; ok {
		return i
	}
	return -1
}

func (m *Matrix) checkRow(g int) error {
	if g < 0 || g >= m.rows {
		return fmt.Errorf("%w: guess index %d not in [0,%d)", errs.ErrIndexOutOfRange, g, m.rows)
	}
	return nil
}

func (m *Matrix) checkCol(k, a int) error {
	if a < 0 || a >= m.cols {
		return fmt.Errorf("%w: candidate[%d]=%d not in [0,%d)", errs.ErrIndexOutOfRange, k, a, m.cols)
	}
	return nil
}

// Cell returns the pattern code for (guess row, answer column).
func (m *Matrix) Cell(g, a int) (pattern.Code, error) {
	if err := m.checkRow(g); err != nil {
		return 0, err
	}
	if a < 0 || a >= m.cols {
		return 0, fmt.Errorf("%w: answer index %d not in [0,%d)", errs.ErrIndexOutOfRange, a, m.cols)
	}
	return pattern.Code(m.data[g*m.cols+a]), nil
}

// Filter keeps the candidates whose cell in row g equals code, in input order.
func (m *Matrix) Filter(g int, code pattern.Code, candidates []int) ([]int, error) {
	if err := m.checkRow(g); err != nil {
		return nil, err
	}
	row := m.data[g*m.cols : (g+1)*m.cols]
	var out []int
	for k, a := range candidates {
		if err := m.checkCol(k, a); err != nil {
			return nil, err
		}
		if pattern.Code(row[a]) == code {
			out = append(out, a)
		}
	}
	return out, nil
}

// Distribution adds weights[k] into the bucket of candidates[k]'s pattern
// for guess row g. weights must be aligned with candidates.
func (m *Matrix) Distribution(g int, candidates []int, weights []float64) (Histogram, error) {
	var h Histogram
	if len(weights) != len(candidates) {
		return h, fmt.Errorf("%w: %d weights for %d candidates", errs.ErrSizeMismatch, len(weights), len(candidates))
	}
	if err := m.checkRow(g); err != nil {
		return h, err
	}
	row := m.data[g*m.cols : (g+1)*m.cols]
	for k, a := range candidates {
		if err := m.checkCol(k, a); err != nil {
			return h, err
		}
		h[row[a]] += weights[k]
	}
	return h, nil
}
