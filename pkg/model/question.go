package model

import (
	"strings"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
)

const (
	QuestionTypeTechnical  = "technical"
	QuestionTypeBehavioral = "behavioral"
	// QuestionTypeMixed is a generation hint only; it is never stored.
	QuestionTypeMixed = "mixed"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

type Question struct {
	ID           int64     `json:"id" db:"id"`
	JobTitle     string    `json:"job_title" db:"job_title"`
	QuestionText string    `json:"question_text" db:"question_text"`
	QuestionType string    `json:"question_type" db:"question_type"`
	Difficulty   int       `json:"difficulty" db:"difficulty"`
	IsFlagged    bool      `json:"is_flagged" db:"is_flagged"`
	Tags         string    `json:"tags" db:"tags"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsStorableType reports whether t is a value the questions table accepts.
// "mixed" is deliberately excluded.
func IsStorableType(t string) bool {
	return t == QuestionTypeTechnical || t == QuestionTypeBehavioral
}

type CreateQuestionReq struct {
	JobTitle     string `json:"job_title"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	Difficulty   *int   `json:"difficulty"`
	Tags         string `json:"tags"`
}

func (r *CreateQuestionReq) Validate() error {
	if strings.TrimSpace(r.JobTitle) == "" {
		return apperror.Validation("job_title must not be blank")
	}
	if len(r.JobTitle) > 255 {
		return apperror.Validation("job_title must be at most 255 characters")
	}
	if strings.TrimSpace(r.QuestionText) == "" {
		return apperror.Validation("question_text must not be blank")
	}
	if !IsStorableType(r.QuestionType) {
		return apperror.Validation("question_type must be %q or %q", QuestionTypeTechnical, QuestionTypeBehavioral)
	}
	if r.Difficulty != nil && (*r.Difficulty < MinDifficulty || *r.Difficulty > MaxDifficulty) {
		return apperror.Validation("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}
	return nil
}

// DifficultyOrDefault returns the requested difficulty, or 1 when the
// field was omitted (the storage default).
func (r *CreateQuestionReq) DifficultyOrDefault() int {
	if r.Difficulty != nil {
		return *r.Difficulty
	}
	return 1
}

type UpdateQuestionReq struct {
	Difficulty *int    `json:"difficulty"`
	IsFlagged  *bool   `json:"is_flagged"`
	Tags       *string `json:"tags"`
}

func (r *UpdateQuestionReq) Validate() error {
	if r.Difficulty == nil && r.IsFlagged == nil && r.Tags == nil {
		return apperror.Validation("at least one of difficulty, is_flagged or tags must be provided")
	}
	if r.Difficulty != nil && (*r.Difficulty < MinDifficulty || *r.Difficulty > MaxDifficulty) {
		return apperror.Validation("difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}
	return nil
}

// Updates flattens the request into the column map the repository's
// dynamic UPDATE builder consumes.
func (r *UpdateQuestionReq) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Difficulty != nil {
		updates["difficulty"] = *r.Difficulty
	}
	if r.IsFlagged != nil {
		updates["is_flagged"] = *r.IsFlagged
	}
	if r.Tags != nil {
		updates["tags"] = *r.Tags
	}
	return updates
}

type ListQuestionsQuery struct {
	Skip         int    `form:"skip,default=0"`
	Limit        int    `form:"limit,default=100"`
	JobTitle     string `form:"job_title"`
	QuestionType string `form:"question_type"`
	FlaggedOnly  bool   `form:"flagged_only"`
}

func (q *ListQuestionsQuery) Validate() error {
	if q.Skip < 0 {
		return apperror.Validation("skip must be non-negative")
	}
	if q.Limit < 1 || q.Limit > 1000 {
		return apperror.Validation("limit must be between 1 and 1000")
	}
	if q.QuestionType != "" && !IsStorableType(q.QuestionType) {
		return apperror.Validation("question_type filter must be %q or %q", QuestionTypeTechnical, QuestionTypeBehavioral)
	}
	return nil
}
