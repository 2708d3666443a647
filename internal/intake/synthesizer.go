package intake

import (
	"context"
	"fmt"

	"resume-annex/internal/llm"
)

// Synthesizer folds the instruction context and every interview answer into
// one final document with a single generation call.
type Synthesizer struct {
	Gen llm.Generator
}

// Synthesize appends the one-shot synthesis directive (never persisted as part
// of the conversation), invokes the generation contract once, and strips any
// code fences from the output. On failure no partial artifact is returned.
func (s Synthesizer) Synthesize(ctx context.Context, interviewContext string, history []Turn) (string, error) {
	messages := make([]llm.Message, 0, len(history)+2)
	if interviewContext != "" {
		messages = append(messages, llm.Message{Role: RoleSystem, Content: interviewContext})
	}
	for _, t := range history {
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: RoleUser, Content: synthesisDirective})

	raw, err := s.Gen.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSynthesis, err)
	}

	artifact := StripFences(raw)
	if artifact == "" {
		return "", fmt.Errorf("%w: empty document", ErrSynthesis)
	}
	return artifact, nil
}
