package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/matrix"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func newBuildMatrixCmd(a *app) *cobra.Command {
	var (
		out   string
		batch int
	)
	cmd := &cobra.Command{
		Use:   "build-matrix",
		Short: "Precompute the guess × answer pattern matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = a.cfg.MatrixFile
			}
			if batch <= 0 {
				batch = a.cfg.BatchSize
			}
			allowed, answers, err := words.Load(a.cfg.AllowedFile, a.cfg.AnswersFile)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(allowed),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("building matrix"),
				progressbar.OptionShowCount(),
			)
			opts := matrix.BuildOptions{
				BatchSize: batch,
				Progress:  func(done, _ int) { _ = bar.Set(done) },
			}
			if err := matrix.BuildFile(out, allowed, answers, opts); err != nil {
				return err
			}
			_ = bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "\nwrote %s (%d guesses × %d answers)\n", out, len(allowed), len(answers))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default from config)")
	cmd.Flags().IntVar(&batch, "batch-size", 0, "guess rows per write (default from config)")
	return cmd
}
