// internal/game/types.go
//
// Core type definitions for solver self-play.
// Defines:
//   - Turn: one guess and the feedback it drew.
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/wordle-solver/internal/pattern"

// Turn is one played guess.
type Turn struct {
	Guess   string          `json:"guess"`
	Pattern pattern.Pattern `json:"pattern"`
	Code    pattern.Code    `json:"code"`
	// Remaining is how many answers were still possible before the guess.
	// Only Play fills it in.
	Remaining int `json:"remaining,omitempty"`
}

// Game holds the state of a single game against a known answer.
type Game struct {
	Answer   string // The solution word (always lowercase).
	Rows     int    // Maximum number of guesses allowed (typically 6).
	Guesses  []Turn // Turns played so far, in order.
	Finished bool   // True once the game is over (won or lost).
	Won      bool   // True if the game was finished with a win.

	answer pattern.WordCode
}
