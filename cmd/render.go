package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"

	"github.com/abhisek/revise/internal/diff"
	"github.com/abhisek/revise/internal/problems"
	"github.com/abhisek/revise/internal/streak"
	"github.com/abhisek/revise/internal/ui/theme"
)

func renderProblems(w io.Writer, list []problems.Problem, today civil.Date) error {
	if len(list) == 0 {
		lipgloss.Fprintln(w, theme.Hint.Render(`No problems yet. Add one with: revise add "Two Sum"`))
		return nil
	}

	lipgloss.Fprintln(w, theme.Title.Render(fmt.Sprintf("Tracked problems (%d)", len(list))))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFIRST\tREVISIONS\tLAST")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, p.FirstAttempt, p.RevisionCount(), lastRevisionLabel(p.DaysSinceLastRevision(today)))
	}
	return tw.Flush()
}

func lastRevisionLabel(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func renderDiff(w io.Writer, res diff.Result) error {
	if res.NoDifferences {
		lipgloss.Fprintln(w, theme.Celebrate.Render("Perfect match! No differences from your saved solution."))
		return nil
	}

	for _, e := range res.Entries {
		switch e.Kind {
		case diff.Match:
			lipgloss.Fprintln(w, theme.DiffMatch.Render("  "+e.Text))
		case diff.Addition:
			lipgloss.Fprintln(w, theme.DiffAddition.Render("+ "+e.Text))
		case diff.Deletion:
			lipgloss.Fprintln(w, theme.DiffDeletion.Render("- "+e.Text))
		}
	}

	matches, additions, deletions := res.Counts()
	lipgloss.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%d unchanged, %d added, %d removed", matches, additions, deletions)))
	return nil
}

func renderStreak(w io.Writer, days int) error {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	lipgloss.Fprintf(w, "%s %d %s\n", theme.Streak.Render("Streak:"), days, unit)

	if days == 0 {
		lipgloss.Fprintln(w, theme.Hint.Render("Revise a problem today to start a streak."))
		return nil
	}
	next := streak.NextMilestone(days)
	lipgloss.Fprintln(w, theme.Hint.Render(fmt.Sprintf("%d more to reach %d", next-days, next)))
	return nil
}
