package intake

import (
	"strings"

	"resume-annex/internal/extract"
)

const sourcePlaceholder = "{{source_text}}"

// ContextBuilder produces the initial instruction context from extracted
// source text. The output is opaque to everything downstream: it is sent to
// the client once and resupplied verbatim as the first message of every turn.
type ContextBuilder struct {
	// CharBudget bounds the embedded source text, in runes.
	CharBudget int
}

// Build embeds the persona directive and the (bounded) source text. Text over
// budget is truncated on a rune boundary rather than rejected.
func (b ContextBuilder) Build(text string) string {
	budget := b.CharBudget
	if budget <= 0 {
		budget = 15000
	}
	bounded := extract.TruncateRunes(text, budget)
	return strings.ReplaceAll(interviewerPrompt, sourcePlaceholder, bounded)
}
