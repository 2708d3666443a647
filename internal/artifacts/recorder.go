package artifacts

import (
	"context"

	"resume-annex/internal/intake"
)

// Recorder adapts the artifact service to the intake persistence hook.
// Anonymous interviews are not persisted; the client response already carries
// the document.
type Recorder struct {
	Svc *Service
}

// Record stores the finished artifact and returns its ID. An empty user ID
// skips storage without error.
func (r Recorder) Record(ctx context.Context, rec intake.ArtifactRecord) (string, error) {
	if rec.UserID == "" {
		return "", nil
	}
	artifact, err := r.Svc.Create(ctx, CreateInput{
		UserID:        rec.UserID,
		Plan:          rec.Plan,
		Content:       rec.Content,
		QuestionCount: rec.QuestionCount,
	})
	if err != nil {
		return "", err
	}
	return artifact.ID, nil
}

var _ intake.ArtifactRecorder = Recorder{}
