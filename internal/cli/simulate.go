package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/game"
)

const defaultDailySalt = "wordle-solver"

func newSimulateCmd(a *app) *cobra.Command {
	var (
		answer string
		date   string
		salt   string
		policy string
		rows   int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the solver play against a known answer",
		Long: `Plays against --answer, or against the daily answer for --date
(YYYY-MM-DD, default today in UTC) when no answer is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, pm, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.policy(e, policy)
			if err != nil {
				return err
			}
			if answer == "" {
				day := time.Now()
				if date != "" {
					if day, err = time.Parse("2006-01-02", date); err != nil {
						return fmt.Errorf("%w: date %q: %v", errs.ErrInvalidInput, date, err)
					}
				}
				answer = game.DailyAnswer(day, salt, e.Answers())
			}

			g, err := game.Play(e, answer, p, pm, rows)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, t := range g.Guesses {
				fmt.Fprintf(w, "%d  %s  %s  (%d possible)\n", i+1, t.Guess, t.Pattern, t.Remaining)
			}
			if g.Won {
				fmt.Fprintf(w, "solved %s in %d\n", g.Answer, len(g.Guesses))
			} else {
				fmt.Fprintf(w, "failed to find %s in %d\n", g.Answer, g.Rows)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "the hidden answer")
	cmd.Flags().StringVar(&date, "date", "", "play the daily answer for this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&salt, "salt", defaultDailySalt, "salt for the daily answer")
	cmd.Flags().StringVar(&policy, "policy", "", "frequency, entropy or expected (default from config)")
	cmd.Flags().IntVar(&rows, "rows", game.DefaultRows, "guess budget")
	return cmd
}
