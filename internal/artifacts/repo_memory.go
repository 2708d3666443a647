package artifacts

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores artifacts in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Artifact
	byUser map[string][]Artifact
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Artifact),
		byUser: make(map[string][]Artifact),
	}
}

// Create stores the artifact.
func (r *MemoryRepo) Create(ctx context.Context, artifact Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[artifact.ID] = artifact
	r.byUser[artifact.UserID] = append(r.byUser[artifact.UserID], artifact)
	return nil
}

// GetByID returns an artifact by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, artifactID string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	artifact, ok := r.byID[artifactID]
	if !ok {
		return Artifact{}, ErrNotFound
	}
	if artifact.UserID != userID {
		return Artifact{}, ErrForbidden
	}
	return artifact, nil
}

// ListByUser returns artifacts for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userArtifacts := r.byUser[userID]
	r.mu.RUnlock()

	if len(userArtifacts) == 0 || offset >= len(userArtifacts) {
		return []Artifact{}, nil
	}

	out := make([]Artifact, len(userArtifacts))
	copy(out, userArtifacts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
