// internal/matrix/build.go
//
// Offline matrix construction.
//
// Rows are computed in batches of BatchSize and each batch is written out
// before the next one starts, so peak memory is O(BatchSize × cols) however
// large the allowed list is. Construction is single-writer and sequential.

package matrix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultBatchSize is the number of rows computed per flush.
const DefaultBatchSize = 1200

// BuildOptions tunes Build.
type BuildOptions struct {
	BatchSize int
	// Progress, if set, is called after every flushed batch.
	Progress func(rowsDone, rows int)
}

func encodeAll(list words.List, name string) ([]pattern.WordCode, error) {
	out := make([]pattern.WordCode, len(list))
	for i, w := range list {
		wc, err := pattern.Encode(w)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		out[i] = wc
	}
	return out, nil
}

// Build writes the allowed × answers matrix to w.
func Build(w io.Writer, allowed, answers words.List, opts BuildOptions) error {
	rows, cols := len(allowed), len(answers)
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%w: cannot build matrix from %d allowed and %d answer words", errs.ErrEmptyInput, rows, cols)
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	guessCodes, err := encodeAll(allowed, "allowed")
	if err != nil {
		return err
	}
	answerCodes, err := encodeAll(answers, "answers")
	if err != nil {
		return err
	}

	buf := make([]byte, min(batch, rows)*cols)
	for r0 := 0; r0 < rows; r0 += batch {
		r1 := min(rows, r0+batch)
		out := buf[:(r1-r0)*cols]
		for r := r0; r < r1; r++ {
			base := (r - r0) * cols
			g := guessCodes[r]
			for c := 0; c < cols; c++ {
				out[base+c] = byte(pattern.ScoreCode(g, answerCodes[c]))
			}
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write rows %d-%d: %w", r0, r1, err)
		}
		log.Debug().Int("rows_done", r1).Int("rows", rows).Msg("matrix batch flushed")
		if opts.Progress != nil {
			opts.Progress(r1, rows)
		}
	}
	return nil
}

// BuildFile builds the matrix into path (via a temp file renamed into place)
// and writes the checksum sidecar next to it.
func BuildFile(path string, allowed, answers words.List, opts BuildOptions) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	start := time.Now()
	log.Info().Int("rows", len(allowed)).Int("cols", len(answers)).Str("out", path).Msg("generating pattern matrix")

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Build(tmp, allowed, answers, opts); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	if err := WriteChecksum(path, allowed, answers); err != nil {
		return err
	}

	log.Info().
		Int("rows", len(allowed)).
		Int("cols", len(answers)).
		Int("bytes", len(allowed)*len(answers)).
		Dur("took", time.Since(start)).
		Msg("pattern matrix written")
	return nil
}
