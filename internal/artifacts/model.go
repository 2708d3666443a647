package artifacts

import "time"

// Artifact is a synthesized resume produced at the end of an interview. The
// markdown body is stored inline; artifacts are small and read back whole.
type Artifact struct {
	ID            string
	UserID        string
	Plan          string
	Content       string
	QuestionCount int
	CreatedAt     time.Time
	DeletedAt     *time.Time
}
