package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		original string
		current  string
		want     []Entry
		noDiff   bool
	}{
		{
			name:     "identical",
			original: "a\nb\nc",
			current:  "a\nb\nc",
			want:     []Entry{{Match, "a"}, {Match, "b"}, {Match, "c"}},
			noDiff:   true,
		},
		{
			name:     "changed last line",
			original: "a\nb",
			current:  "a\nx",
			want:     []Entry{{Match, "a"}, {Addition, "x"}, {Deletion, "b"}},
		},
		{
			name:     "both empty",
			original: "",
			current:  "",
			want:     nil,
			noDiff:   true,
		},
		{
			name:     "only blank lines",
			original: "\n  \n\t",
			current:  " \n\n",
			want:     nil,
			noDiff:   true,
		},
		{
			name:     "current longer",
			original: "a",
			current:  "a\nb\nc",
			want:     []Entry{{Match, "a"}, {Addition, "b"}, {Addition, "c"}},
		},
		{
			name:     "original longer",
			original: "a\nb\nc",
			current:  "a",
			want:     []Entry{{Match, "a"}, {Deletion, "b"}, {Deletion, "c"}},
		},
		{
			name:     "blank replaced by text",
			original: "a\n\nc",
			current:  "a\nb\nc",
			want:     []Entry{{Match, "a"}, {Addition, "b"}, {Match, "c"}},
		},
		{
			name:     "text replaced by blank",
			original: "a\nb\nc",
			current:  "a\n   \nc",
			want:     []Entry{{Match, "a"}, {Deletion, "b"}, {Match, "c"}},
		},
		{
			name:     "inserted line cascades",
			original: "a\nb\nc",
			current:  "x\na\nb\nc",
			want: []Entry{
				{Addition, "x"}, {Deletion, "a"},
				{Addition, "a"}, {Deletion, "b"},
				{Addition, "b"}, {Deletion, "c"},
				{Addition, "c"},
			},
		},
		{
			name:     "indentation is significant",
			original: "  return x",
			current:  "\treturn x",
			want:     []Entry{{Addition, "\treturn x"}, {Deletion, "  return x"}},
		},
		{
			name:     "carriage returns are line content",
			original: "a\r\nb\r\n",
			current:  "a\nb\n",
			want: []Entry{
				{Addition, "a"}, {Deletion, "a\r"},
				{Addition, "b"}, {Deletion, "b\r"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.original, tt.current)
			assert.Equal(t, tt.want, got.Entries)
			assert.Equal(t, tt.noDiff, got.NoDifferences)
		})
	}
}

func TestLinesNeverReportsBlankChanges(t *testing.T) {
	pairs := [][2]string{
		{"a\n\nb", "a\n  \nb"},
		{"\n\n\n", ""},
		{"", "\t\n \n"},
		{"x\n \ny", "z\n\t\nw"},
	}
	for _, p := range pairs {
		for _, e := range Lines(p[0], p[1]).Entries {
			assert.False(t, isBlank(e.Text), "blank %s entry for %q vs %q", e.Kind, p[0], p[1])
		}
	}
}

func TestCounts(t *testing.T) {
	m, a, d := Lines("a\nb\nc", "a\nx").Counts()
	assert.Equal(t, 1, m)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, d)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "addition", Addition.String())
	assert.Equal(t, "deletion", Deletion.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
