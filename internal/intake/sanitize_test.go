package intake

import (
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fences",
			in:   "# Jane Doe\n\nStaff Engineer",
			want: "# Jane Doe\n\nStaff Engineer",
		},
		{
			name: "plain fence pair",
			in:   "```\n# Jane Doe\n```",
			want: "# Jane Doe",
		},
		{
			name: "fence with language tag",
			in:   "```markdown\n# Jane Doe\n\n## Summary\n```",
			want: "# Jane Doe\n\n## Summary",
		},
		{
			name: "multiple fence blocks",
			in:   "```md\n# Header\n```\nbetween\n```\n## Skills\n```",
			want: "# Header\nbetween\n## Skills",
		},
		{
			name: "inline marker",
			in:   "before ``` after",
			want: "before  after",
		},
		{
			name: "surrounding whitespace",
			in:   "\n\n```\ndoc\n```\n\n",
			want: "doc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.in)
			if got != tt.want {
				t.Fatalf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if strings.Contains(got, "```") {
				t.Fatalf("output still contains a fence: %q", got)
			}
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	inputs := []string{
		"# clean document",
		"```markdown\n# fenced\n```",
		"``` ```\nodd\n```",
		"a```b```c",
	}
	for _, in := range inputs {
		once := StripFences(in)
		twice := StripFences(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
