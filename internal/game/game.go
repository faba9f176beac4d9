// internal/game/game.go
//
// Self-play: the solver guesses against a known answer.
// Responsibilities:
//   - Create games with a validated answer and a row budget.
//   - Score guesses with the pattern codec and track playing → won/lost.
//   - Drive a solver engine turn by turn until the game finishes.
//
// Notes:
//   - Guesses are not checked against the allowed list; any five-letter word
//     can be scored.

package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/priors"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultRows is the classic six-guess budget.
const DefaultRows = 6

// New constructs a game for answer. rows <= 0 means DefaultRows.
func New(answer string, rows int) (*Game, error) {
	answer = words.Normalize(answer)
	code, err := pattern.Encode(answer)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{
		Answer:  answer,
		Rows:    rows,
		Guesses: []Turn{},
		answer:  code,
	}, nil
}

// ApplyGuess scores a guess against the answer and records the turn.
//
// State transitions:
//   - If the pattern is solved → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Turn, error) {
	if g.Finished {
		return Turn{}, fmt.Errorf("%w: game finished", errs.ErrInvalidInput)
	}
	guess = words.Normalize(guess)
	gc, err := pattern.Encode(guess)
	if err != nil {
		return Turn{}, err
	}

	p := pattern.Score(gc, g.answer)
	t := Turn{Guess: guess, Pattern: p, Code: p.Code()}
	g.Guesses = append(g.Guesses, t)

	if p.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return t, nil
}

// State reports "playing", "won" or "lost".
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Play lets e guess answer under policy p until the game finishes.
// It fails with errs.ErrContradiction if answer is not among e's answers.
func Play(e *solver.Engine, answer string, p solver.Policy, pm priors.Map, rows int) (*Game, error) {
	g, err := New(answer, rows)
	if err != nil {
		return nil, err
	}

	var cons []solver.Constraint
	for !g.Finished {
		s, err := e.Suggest(solver.Request{Constraints: cons, Policy: p, Priors: pm, SampleSize: 1})
		if err != nil {
			return g, err
		}
		if s.Contradiction {
			return g, fmt.Errorf("%w: %q is not a possible answer", errs.ErrContradiction, g.Answer)
		}
		t, err := g.ApplyGuess(s.NextGuess)
		if err != nil {
			return g, err
		}
		g.Guesses[len(g.Guesses)-1].Remaining = s.PossibleCount
		log.Debug().
			Str("guess", t.Guess).
			Str("pattern", t.Pattern.String()).
			Int("remaining", s.PossibleCount).
			Msg("self-play turn")
		cons = append(cons, solver.Constraint{Guess: t.Guess, Pattern: int(t.Code)})
	}
	return g, nil
}
