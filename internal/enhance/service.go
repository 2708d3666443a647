// Package enhance rewrites a single resume bullet into an executive,
// results-driven line. It is the one-shot counterpart to the interview flow:
// no history, no state, one generation per request.
package enhance

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"resume-annex/internal/intake"
	"resume-annex/internal/llm"
)

//go:embed prompts/rewriter.txt
var rewriterPrompt string

// Service performs bullet rewrites against a generation backend.
type Service struct {
	Gen llm.Generator
}

// NewService constructs a Service.
func NewService(gen llm.Generator) *Service {
	return &Service{Gen: gen}
}

// Rewrite returns an enhanced version of the given bullet point.
func (s *Service) Rewrite(ctx context.Context, bullet string) (string, error) {
	messages := []llm.Message{
		{Role: intake.RoleSystem, Content: rewriterPrompt},
		{Role: intake.RoleUser, Content: fmt.Sprintf("Optimize this bullet: %q", bullet)},
	}
	out, err := s.Gen.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("rewrite bullet: %w", err)
	}
	return strings.TrimSpace(intake.StripFences(out)), nil
}
