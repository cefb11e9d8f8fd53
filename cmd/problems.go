package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/abhisek/revise/internal/session"
	"github.com/abhisek/revise/internal/ui/theme"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Track a new problem, first attempted today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			p, err := a.problems.AddProblem(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			lipgloss.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", theme.Celebrate.Render("Added"), p.ID, p.Name)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.problems.ListProblems(cmd.Context())
	if err != nil {
		return err
	}
	return renderProblems(cmd.OutOrStdout(), list, a.problems.Today())
}

func newReviseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "revise <id>",
		Short: "Mark a problem as revised today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			date := a.problems.Today()
			if s, _ := cmd.Flags().GetString("date"); s != "" {
				date, err = civil.ParseDate(s)
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
				}
			}

			p, err := a.problems.MarkRevision(cmd.Context(), id, date)
			if err != nil {
				return err
			}
			lipgloss.Fprintf(cmd.OutOrStdout(), "%s %s on %s (%d revisions)\n",
				theme.Celebrate.Render("Revised"), p.Name, date, p.RevisionCount())
			return nil
		},
	}
	c.Flags().String("date", "", "Revision date as YYYY-MM-DD (default today)")
	return c
}

func newSolutionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "solution [id]",
		Short: "Save the reference solution for a problem",
		Long: `Save the reference solution for a problem, read from --file or stdin.
Without an id the problem chosen with "revise select" is used.`,
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
			text, err := readInput(cmd)
			if err != nil {
				return err
			}

			p, err := a.problems.SaveSolution(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			lipgloss.Fprintf(cmd.OutOrStdout(), "%s solution for %s (%d lines)\n",
				theme.Celebrate.Render("Saved"), p.Name, countLines(p.Solution))
			return nil
		},
	}
	c.Flags().StringP("file", "f", "", "Read the solution from this file instead of stdin")
	return c
}

func newSelectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "select [id]",
		Short: "Choose the problem that solution and diff act on",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			kv := a.store.KV()
			sess, err := session.Load(ctx, kv)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if clearSel, _ := cmd.Flags().GetBool("clear"); clearSel {
				sess.Clear()
				if err := sess.Save(ctx, kv); err != nil {
					return err
				}
				fmt.Fprintln(out, "Selection cleared")
				return nil
			}

			if len(args) == 0 {
				id, ok := sess.SelectedID()
				if !ok {
					lipgloss.Fprintln(out, theme.Hint.Render("No problem selected"))
					return nil
				}
				p, err := a.problems.GetProblem(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Selected #%d %s\n", p.ID, p.Name)
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.problems.GetProblem(ctx, id)
			if err != nil {
				return err
			}
			sess.Select(p.ID)
			if err := sess.Save(ctx, kv); err != nil {
				return err
			}
			fmt.Fprintf(out, "Selected #%d %s\n", p.ID, p.Name)
			return nil
		},
	}
	c.Flags().Bool("clear", false, "Clear the current selection")
	return c
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid problem id %q", s)
	}
	return id, nil
}

// resolveProblemID takes the id from args, falling back to the session selection.
func resolveProblemID(cmd *cobra.Command, a *app, args []string) (int64, error) {
	if len(args) == 1 {
		return parseID(args[0])
	}
	sess, err := session.Load(cmd.Context(), a.store.KV())
	if err != nil {
		return 0, err
	}
	id, ok := sess.SelectedID()
	if !ok {
		return 0, errors.New(`no problem selected: pass an id or run "revise select <id>"`)
	}
	return id, nil
}

// readInput returns the contents of --file, or stdin when no file is given.
// CRLF line endings are normalized to LF.
func readInput(cmd *cobra.Command) (string, error) {
	var (
		b   []byte
		err error
	)
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		if b, err = os.ReadFile(path); err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	} else if b, err = io.ReadAll(cmd.InOrStdin()); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

func countLines(s string) int {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
