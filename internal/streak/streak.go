package streak

import (
	"cloud.google.com/go/civil"

	"github.com/abhisek/revise/internal/problems"
)

// Current returns the number of consecutive days, ending at today, on which
// at least one problem was revised. It is 0 when nothing was revised today.
// Several problems revised on the same day count as one day.
func Current(ps []problems.Problem, today civil.Date) int {
	active := make(map[civil.Date]struct{})
	for _, p := range ps {
		for _, d := range p.Revisions {
			active[d] = struct{}{}
		}
	}

	// Each step consumes one distinct date from a finite set.
	n := 0
	for d := today; ; d = d.AddDays(-1) {
		if _, ok := active[d]; !ok {
			return n
		}
		n++
	}
}

// NextMilestone returns the next streak milestone above the current length.
func NextMilestone(current int) int {
	milestones := []int{3, 7, 14, 30}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 30, every 30 days.
	return ((current / 30) + 1) * 30
}
