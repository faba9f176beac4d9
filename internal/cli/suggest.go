package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func newSuggestCmd(a *app) *cobra.Command {
	var (
		policy string
		top    int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "suggest [guess=pattern ...]",
		Short: "Print the next guess for the given feedback",
		Long: `Each argument is a played guess and its feedback, e.g. crane=01020.
The feedback is five digits (0 miss, 1 misplaced, 2 exact), five colour
letters (b/x grey, y yellow, g green) or the numeric code 0..242.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cons := make([]solver.Constraint, len(args))
			for i, arg := range args {
				c, err := parseConstraint(arg)
				if err != nil {
					return err
				}
				cons[i] = c
			}

			e, pm, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.policy(e, policy)
			if err != nil {
				return err
			}
			s, err := e.Suggest(solver.Request{
				Constraints: cons,
				Policy:      p,
				Priors:      pm,
				SampleSize:  a.cfg.SampleSize,
				Top:         top,
			})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			printSuggestion(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "", "frequency, entropy or expected (default from config)")
	cmd.Flags().IntVar(&top, "top", 0, "also list the best N guesses with scores")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the suggestion as JSON")
	return cmd
}

// policy parses name. Without one it uses the configured default, or
// frequency if that default needs a matrix e does not have.
func (a *app) policy(e *solver.Engine, name string) (solver.Policy, error) {
	if name == "" {
		return e.Available(a.cfg.Policy()), nil
	}
	return solver.ParsePolicy(name)
}

// parseConstraint reads "guess=feedback".
func parseConstraint(arg string) (solver.Constraint, error) {
	guess, fb, ok := strings.Cut(arg, "=")
	if !ok || guess == "" || fb == "" {
		return solver.Constraint{}, fmt.Errorf("%w: %q is not guess=pattern", errs.ErrInvalidInput, arg)
	}
	fb = strings.TrimSpace(fb)
	if len(fb) == pattern.WordLen {
		p, err := pattern.Parse(fb)
		if err != nil {
			return solver.Constraint{}, err
		}
		return solver.Constraint{Guess: guess, Pattern: int(p.Code())}, nil
	}
	n, err := strconv.Atoi(fb)
	if err != nil {
		return solver.Constraint{}, fmt.Errorf("%w: feedback %q", errs.ErrInvalidInput, fb)
	}
	return solver.Constraint{Guess: guess, Pattern: n}, nil
}

func printSuggestion(w io.Writer, s solver.Suggestion) {
	if s.Contradiction {
		fmt.Fprintln(w, "no possibilities left for the given guesses and patterns")
		return
	}
	fmt.Fprintf(w, "next guess: %s\n", s.NextGuess)
	if s.Ranked {
		fmt.Fprintf(w, "policy:     %s\n", s.Policy)
	}
	fmt.Fprintf(w, "possible:   %d\n", s.PossibleCount)
	fmt.Fprintf(w, "sample:     %s\n", strings.Join(s.Sample, " "))
	for i, r := range s.Top {
		fmt.Fprintf(w, "%3d. %s  %.4f\n", i+1, r.Word, r.Score)
	}
}
