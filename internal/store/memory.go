// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Backs the file-based and uniform prior sources.
//
// Characteristics:
//   - Holds one priors.Map, fixed at construction.
//   - Priors() hands out a copy, so callers cannot mutate the shared map and
//     concurrent readers need no locking.

package store

import (
	"context"

	"github.com/robalobadob/wordle-solver/internal/priors"
)

// Store yields the prior weights used to rank guesses.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Priors returns word → weight. Absent words weigh 0.
	Priors(ctx context.Context) (priors.Map, error)
}

// memory is a map-based Store.
type memory struct {
	m priors.Map
}

// NewMemoryStore wraps m. The map is copied.
func NewMemoryStore(m priors.Map) Store {
	return &memory{m: clone(m)}
}

// Priors returns a copy of the stored map.
func (s *memory) Priors(ctx context.Context) (priors.Map, error) {
	return clone(s.m), nil
}

func clone(m priors.Map) priors.Map {
	out := make(priors.Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
