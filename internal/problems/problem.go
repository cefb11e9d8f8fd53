package problems

import (
	"sort"

	"cloud.google.com/go/civil"
)

// Problem is a tracked practice problem and its revision history.
type Problem struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	FirstAttempt civil.Date   `json:"firstAttempt"`
	Revisions    []civil.Date `json:"revisions"`
	Solution     string       `json:"solution"`
}

// RevisedOn reports whether the problem has a revision dated d.
func (p *Problem) RevisedOn(d civil.Date) bool {
	for _, r := range p.Revisions {
		if r == d {
			return true
		}
	}
	return false
}

// RevisionCount returns the number of distinct revision days.
func (p *Problem) RevisionCount() int {
	return len(p.Revisions)
}

// LastRevision returns the most recent revision date.
func (p *Problem) LastRevision() civil.Date {
	var last civil.Date
	for _, r := range p.Revisions {
		if r.After(last) {
			last = r
		}
	}
	return last
}

// DaysSinceLastRevision returns how many days before today the problem was
// last revised. 0 means today.
func (p *Problem) DaysSinceLastRevision(today civil.Date) int {
	return today.DaysSince(p.LastRevision())
}

// addRevision records d, keeping revisions chronological and one per day.
// It reports whether the history changed.
func (p *Problem) addRevision(d civil.Date) bool {
	if p.RevisedOn(d) {
		return false
	}
	i := sort.Search(len(p.Revisions), func(i int) bool {
		return p.Revisions[i].After(d)
	})
	p.Revisions = append(p.Revisions, civil.Date{})
	copy(p.Revisions[i+1:], p.Revisions[i:])
	p.Revisions[i] = d
	return true
}

func (p Problem) clone() Problem {
	p.Revisions = append([]civil.Date(nil), p.Revisions...)
	return p
}

func cloneAll(ps []Problem) []Problem {
	out := make([]Problem, len(ps))
	for i, p := range ps {
		out[i] = p.clone()
	}
	return out
}
