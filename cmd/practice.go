package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/revise/internal/diff"
	"github.com/abhisek/revise/internal/streak"
)

func newDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff [id]",
		Short: "Compare a fresh attempt against the saved solution",
		Long: `Compare a fresh attempt, read from --file or stdin, against the saved
solution line by line. Lines are compared by position, so an inserted or
removed line marks every following line as changed.

The problem must already have a saved solution (see "revise solution").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := resolveProblemID(cmd, a, args)
			if err != nil {
				return err
			}
			p, err := a.problems.GetProblem(cmd.Context(), id)
			if err != nil {
				return err
			}
			if p.Solution == "" {
				return fmt.Errorf("problem %d has no saved solution: run \"revise solution %d\" first", p.ID, p.ID)
			}

			attempt, err := readInput(cmd)
			if err != nil {
				return err
			}
			return renderDiff(cmd.OutOrStdout(), diff.Lines(p.Solution, attempt))
		},
	}
	c.Flags().StringP("file", "f", "", "Read the attempt from this file instead of stdin")
	return c
}

func newStreakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current daily revision streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			list, err := a.problems.ListProblems(cmd.Context())
			if err != nil {
				return err
			}
			return renderStreak(cmd.OutOrStdout(), streak.Current(list, a.problems.Today()))
		},
	}
}
