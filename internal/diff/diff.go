// Package diff compares a saved solution against a fresh attempt line by line.
//
// The comparison is positional: line i of one text is compared only with
// line i of the other. Inserting or deleting a line therefore reports every
// following line as changed. This keeps the output predictable for short
// solutions and is intentional.
package diff

import "strings"

// Kind classifies a diff entry.
type Kind int

const (
	Match Kind = iota
	Addition
	Deletion
)

func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case Addition:
		return "addition"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Entry is one reported line.
type Entry struct {
	Kind Kind
	Text string
}

// Result is the outcome of Lines.
type Result struct {
	Entries []Entry

	// NoDifferences is true when no Addition or Deletion was produced,
	// including when both texts are blank and Entries is empty.
	NoDifferences bool
}

// Counts tallies entries by kind.
func (r Result) Counts() (matches, additions, deletions int) {
	for _, e := range r.Entries {
		switch e.Kind {
		case Match:
			matches++
		case Addition:
			additions++
		case Deletion:
			deletions++
		}
	}
	return matches, additions, deletions
}

// Lines compares original and current by line index. Blank lines are never
// reported. At a differing index the current line is reported as an Addition
// before the original line is reported as a Deletion.
func Lines(original, current string) Result {
	orig := splitLines(original)
	cur := splitLines(current)

	n := max(len(orig), len(cur))
	res := Result{NoDifferences: true}
	for i := 0; i < n; i++ {
		o := lineAt(orig, i)
		c := lineAt(cur, i)

		if o == c {
			if !isBlank(o) {
				res.Entries = append(res.Entries, Entry{Kind: Match, Text: o})
			}
			continue
		}

		if !isBlank(c) {
			res.Entries = append(res.Entries, Entry{Kind: Addition, Text: c})
			res.NoDifferences = false
		}
		if !isBlank(o) {
			res.Entries = append(res.Entries, Entry{Kind: Deletion, Text: o})
			res.NoDifferences = false
		}
	}
	return res
}

// splitLines splits on "\n" only. A trailing "\r" stays part of the line.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
