package artifacts

import "time"

// ArtifactResponse is the outward-facing representation of an artifact.
type ArtifactResponse struct {
	ArtifactID    string    `json:"artifactId"`
	Plan          string    `json:"plan"`
	Content       string    `json:"content"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ArtifactSummary is the list-view representation; the markdown body is
// omitted to keep list responses small.
type ArtifactSummary struct {
	ArtifactID    string    `json:"artifactId"`
	Plan          string    `json:"plan"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toResponse(a Artifact) ArtifactResponse {
	return ArtifactResponse{
		ArtifactID:    a.ID,
		Plan:          a.Plan,
		Content:       a.Content,
		QuestionCount: a.QuestionCount,
		CreatedAt:     a.CreatedAt,
	}
}

func toSummary(a Artifact) ArtifactSummary {
	return ArtifactSummary{
		ArtifactID:    a.ID,
		Plan:          a.Plan,
		QuestionCount: a.QuestionCount,
		CreatedAt:     a.CreatedAt,
	}
}
