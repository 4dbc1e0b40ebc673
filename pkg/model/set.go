package model

import (
	"strings"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
)

// QuestionSet is a named, ordered curation of existing questions.
// Membership is stored relationally; QuestionIDs carries the members in
// their ordinal order.
type QuestionSet struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	JobTitle    string    `json:"job_title" db:"job_title"`
	QuestionIDs []int64   `json:"question_ids"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateQuestionSetReq struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	JobTitle    string  `json:"job_title"`
	QuestionIDs []int64 `json:"question_ids"`
}

func (r *CreateQuestionSetReq) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperror.Validation("name must not be blank")
	}
	if len(r.Name) > 255 {
		return apperror.Validation("name must be at most 255 characters")
	}
	if strings.TrimSpace(r.JobTitle) == "" {
		return apperror.Validation("job_title must not be blank")
	}
	if len(r.QuestionIDs) == 0 {
		return apperror.Validation("question_ids must not be empty")
	}
	seen := make(map[int64]struct{}, len(r.QuestionIDs))
	for _, id := range r.QuestionIDs {
		if _, ok := seen[id]; ok {
			return apperror.Validation("question_ids contains duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

type ListQuestionSetsQuery struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}

func (q *ListQuestionSetsQuery) Validate() error {
	if q.Skip < 0 {
		return apperror.Validation("skip must be non-negative")
	}
	if q.Limit < 1 || q.Limit > 1000 {
		return apperror.Validation("limit must be between 1 and 1000")
	}
	return nil
}
