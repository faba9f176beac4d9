// internal/store/sqlite.go
//
// SQLite-backed prior store.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying migrations from the embedded sql/*.sql (idempotent, recorded in _migrations).
//   - Reading the priors table (word, weight) into a priors.Map.
//
// The solver never writes priors; the table is seeded by whoever owns the
// word-frequency data.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/priors"
	"github.com/robalobadob/wordle-solver/internal/words"
)

//go:embed sql/*.sql
var migrations embed.FS

// OpenDB opens (and creates if missing) a SQLite database file.
// The parent directory is created for relative DSNs such as ./data/priors.db.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in lexical order, skipping those
// already recorded in _migrations. Each file runs in its own transaction.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// sqliteStore reads priors from the priors table on every call.
type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a Store over db. Call Migrate first.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

// Priors loads every (word, weight) row. Rows whose word is not a valid
// 5-letter word are skipped; a negative weight is an error.
func (s *sqliteStore) Priors(ctx context.Context) (priors.Map, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, weight FROM priors`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(priors.Map)
	for rows.Next() {
		var word string
		var weight float64
		if err := rows.Scan(&word, &weight); err != nil {
			return nil, err
		}
		w := strings.ToLower(strings.TrimSpace(word))
		if !words.IsWord(w) {
			continue
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: negative prior %v for %q", errs.ErrInvalidInput, weight, w)
		}
		out[w] = weight
	}
	return out, rows.Err()
}
