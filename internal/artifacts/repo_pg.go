package artifacts

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an artifact.
func (r *PGRepo) Create(ctx context.Context, artifact Artifact) error {
	const query = `
INSERT INTO artifacts (
    id, user_id, plan, content, question_count, created_at
) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		artifact.ID,
		artifact.UserID,
		artifact.Plan,
		artifact.Content,
		artifact.QuestionCount,
		artifact.CreatedAt,
	)
	return err
}

// GetByID returns an artifact by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, artifactID string) (Artifact, error) {
	const query = `
SELECT id, user_id, plan, content, question_count, created_at
FROM artifacts
WHERE id = $1 AND deleted_at IS NULL
LIMIT 1`
	var artifact Artifact
	err := r.DB.QueryRowContext(ctx, query, artifactID).Scan(
		&artifact.ID,
		&artifact.UserID,
		&artifact.Plan,
		&artifact.Content,
		&artifact.QuestionCount,
		&artifact.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artifact{}, ErrNotFound
		}
		return Artifact{}, err
	}
	if artifact.UserID != userID {
		return Artifact{}, ErrForbidden
	}
	return artifact, nil
}

// ListByUser lists artifacts ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Artifact, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, plan, content, question_count, created_at
FROM artifacts
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Artifact
	for rows.Next() {
		var artifact Artifact
		if err := rows.Scan(
			&artifact.ID,
			&artifact.UserID,
			&artifact.Plan,
			&artifact.Content,
			&artifact.QuestionCount,
			&artifact.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, artifact)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
