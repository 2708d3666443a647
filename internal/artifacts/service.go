package artifacts

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for synthesized artifacts.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the fields persisted for a finished interview.
type CreateInput struct {
	UserID        string
	Plan          string
	Content       string
	QuestionCount int
}

// Create persists a synthesized artifact and returns it.
func (s *Service) Create(ctx context.Context, in CreateInput) (Artifact, error) {
	if in.UserID == "" || strings.TrimSpace(in.Content) == "" {
		return Artifact{}, ErrInvalidInput
	}

	artifact := Artifact{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		Plan:          in.Plan,
		Content:       in.Content,
		QuestionCount: in.QuestionCount,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, artifact); err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

// Get returns an artifact by ID for a user.
func (s *Service) Get(ctx context.Context, userID, artifactID string) (Artifact, error) {
	if userID == "" || artifactID == "" {
		return Artifact{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, artifactID)
}

// List returns artifacts for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Artifact, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
