package artifacts

import "context"

// Repo defines persistence operations for synthesized artifacts.
type Repo interface {
	Create(ctx context.Context, artifact Artifact) error
	GetByID(ctx context.Context, userID, artifactID string) (Artifact, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Artifact, error)
}
