package generator

import (
	"context"
	"strings"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
)

const (
	minJobTitleLen = 2
	maxJobTitleLen = 100
	minCount       = 1
	maxCount       = 100
)

// Request is a validated generation request. QuestionType may be
// "technical", "behavioral" or "mixed"; mixed is a hint only and never
// reaches storage.
type Request struct {
	JobTitle     string `json:"job_title"`
	Count        int    `json:"count"`
	QuestionType string `json:"question_type"`
}

func (r *Request) Validate() error {
	title := strings.TrimSpace(r.JobTitle)
	if title == "" {
		return apperror.Validation("job_title must not be blank")
	}
	if len(title) < minJobTitleLen || len(title) > maxJobTitleLen {
		return apperror.Validation("job_title must be between %d and %d characters", minJobTitleLen, maxJobTitleLen)
	}
	if r.Count < minCount || r.Count > maxCount {
		return apperror.Validation("count must be between %d and %d", minCount, maxCount)
	}
	switch r.QuestionType {
	case model.QuestionTypeTechnical, model.QuestionTypeBehavioral, model.QuestionTypeMixed:
		return nil
	default:
		return apperror.Validation("question_type must be %q, %q or %q",
			model.QuestionTypeTechnical, model.QuestionTypeBehavioral, model.QuestionTypeMixed)
	}
}

// Candidate is one parsed or synthesized question before persistence.
// It never carries a job title; that always comes from the request.
type Candidate struct {
	QuestionText string
	QuestionType string
	Difficulty   int
	Tags         string
}

// Source produces question candidates from a live AI provider. One call
// is one upstream attempt; simplified selects the terser retry prompt.
// The orchestrator owns all retry and fallback policy.
type Source interface {
	Questions(ctx context.Context, jobTitle string, count int, questionType string, simplified bool) ([]Candidate, error)
}
