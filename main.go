// main.go
//
// Entry point for the wordle-solver binary.
// Loads .env (development convenience) and hands over to the cobra command
// tree in internal/cli.

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/cli"
)

func main() {
	_ = godotenv.Load()
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("wordle-solver failed")
		os.Exit(1)
	}
}
