package intake

import (
	"context"

	"resume-annex/internal/llm"
)

// Driver orchestrates one non-terminal turn: instruction context first, then
// history in order, then one generation call. It does not mutate history; the
// caller appends the returned turn to its own copy.
type Driver struct {
	Gen llm.Generator
}

// Advance returns the next assistant turn. On the first turn the context
// alone is enough for the driver to open with a question.
func (d Driver) Advance(ctx context.Context, interviewContext string, history []Turn) (Turn, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	if interviewContext != "" {
		messages = append(messages, llm.Message{Role: RoleSystem, Content: interviewContext})
	}
	for _, t := range history {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}

	reply, err := d.Gen.Generate(ctx, messages)
	if err != nil {
		return Turn{}, err
	}
	return Turn{Role: RoleAssistant, Content: reply}, nil
}
