package streak

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/abhisek/revise/internal/problems"
)

var today = civil.Date{Year: 2026, Month: time.March, Day: 1}

func problem(daysAgo ...int) problems.Problem {
	p := problems.Problem{Name: "p"}
	for _, n := range daysAgo {
		p.Revisions = append(p.Revisions, today.AddDays(-n))
	}
	return p
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name string
		ps   []problems.Problem
		want int
	}{
		{"no problems", nil, 0},
		{"nothing today", []problems.Problem{problem(1, 2, 3)}, 0},
		{"today only", []problems.Problem{problem(0)}, 1},
		{"three days then gap", []problems.Problem{problem(0, 1, 2, 4, 5)}, 3},
		{"spread across problems", []problems.Problem{problem(0), problem(1), problem(2)}, 3},
		{"same day counted once", []problems.Problem{problem(0, 1), problem(0, 1), problem(1)}, 2},
		{"unsorted revisions", []problems.Problem{problem(2, 0, 1)}, 3},
		{"future revision ignored", []problems.Problem{problem(-1, 0)}, 1},
		// 2026-03-01 minus 1 is 2026-02-28: month boundary.
		{"across month boundary", []problems.Problem{problem(0, 1, 2, 3)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Current(tt.ps, today)
			if got != tt.want {
				t.Errorf("Current() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentAcrossYearBoundary(t *testing.T) {
	newYear := civil.Date{Year: 2027, Month: time.January, Day: 1}
	p := problems.Problem{Revisions: []civil.Date{
		{Year: 2026, Month: time.December, Day: 30},
		{Year: 2026, Month: time.December, Day: 31},
		newYear,
	}}
	if got := Current([]problems.Problem{p}, newYear); got != 3 {
		t.Errorf("Current() = %d, want 3", got)
	}
}

func TestCurrentLongStreak(t *testing.T) {
	days := make([]int, 400)
	for i := range days {
		days[i] = i
	}
	if got := Current([]problems.Problem{problem(days...)}, today); got != 400 {
		t.Errorf("Current() = %d, want 400", got)
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 7},
		{6, 7},
		{7, 14},
		{13, 14},
		{14, 30},
		{29, 30},
		{30, 60},
		{59, 60},
		{60, 90},
	}

	for _, tt := range tests {
		got := NextMilestone(tt.current)
		if got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
