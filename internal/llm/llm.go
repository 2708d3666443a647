package llm

import (
	"context"
	"errors"
)

// Message is one role-tagged segment of a generation request. Role is "system",
// "user", or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator abstracts the external generation service. Implementations must
// preserve message order: instruction context first, dialogue history in
// chronological order, any one-shot directive last.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// ErrNotConfigured is returned when no provider credential is available. The
// affected endpoints report this as a service-level failure; the rest of the
// system keeps serving.
var ErrNotConfigured = errors.New("llm provider not configured")

// ErrUnavailable wraps provider failures. The caller may retry the same call:
// no interview state is mutated before a successful generation.
var ErrUnavailable = errors.New("llm service unavailable")

// Unconfigured is the Generator used when no credential is present.
type Unconfigured struct{}

// Generate always fails with ErrNotConfigured.
func (Unconfigured) Generate(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return "", ErrNotConfigured
}
