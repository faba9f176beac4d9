package cli

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/matrix"
	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/priors"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// loadEngine reads the word lists, the matrix (if usable) and the priors.
// A missing or unusable matrix only disables the matrix policies.
func (a *app) loadEngine(ctx context.Context) (*solver.Engine, priors.Map, error) {
	allowed, answers, err := words.Load(a.cfg.AllowedFile, a.cfg.AnswersFile)
	if err != nil {
		return nil, nil, err
	}

	m := loadMatrix(a.cfg.MatrixFile, allowed, answers)
	e, err := solver.NewEngine(allowed, answers, m)
	if err != nil {
		return nil, nil, err
	}
	metrics.SetMatrixLoaded(e.HasMatrix())

	pm, err := loadPriors(ctx, a.cfg, answers)
	if err != nil {
		return nil, nil, err
	}

	log.Info().
		Int("allowed", len(allowed)).
		Int("answers", len(answers)).
		Bool("matrix", e.HasMatrix()).
		Int("priors", len(pm)).
		Msg("solver ready")
	return e, pm, nil
}

func loadMatrix(path string, allowed, answers words.List) *matrix.Matrix {
	if _, err := os.Stat(path); err != nil {
		log.Info().Str("path", path).Msg("no pattern matrix; entropy and expected policies disabled")
		return nil
	}
	m, err := matrix.Load(path, allowed, answers)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("pattern matrix unusable; continuing without it")
		return nil
	}
	switch ok, err := matrix.VerifyChecksum(path, allowed, answers); {
	case errors.Is(err, os.ErrNotExist):
		log.Debug().Str("path", path).Msg("matrix has no checksum sidecar")
	case err != nil:
		log.Warn().Err(err).Msg("read matrix checksum")
	case !ok:
		log.Warn().Str("path", path).Msg("matrix checksum does not match the word lists; rebuild with build-matrix")
	}
	return m
}

// loadPriors resolves the prior weights: SQLite table, then weights file,
// then uniform over the answers.
func loadPriors(ctx context.Context, cfg config.Config, answers words.List) (priors.Map, error) {
	var st store.Store
	switch {
	case cfg.PriorsDB != "":
		db, err := store.OpenDB(cfg.PriorsDB)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := store.Migrate(db); err != nil {
			return nil, err
		}
		st = store.NewSQLiteStore(db)
	case cfg.PriorsFile != "":
		m, err := priors.ReadFile(cfg.PriorsFile)
		if err != nil {
			return nil, err
		}
		st = store.NewMemoryStore(m)
	default:
		st = store.NewMemoryStore(priors.Uniform(answers))
	}
	return st.Priors(ctx)
}
