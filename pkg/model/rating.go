package model

import (
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Rating is one piece of user feedback on a question. It is immutable
// after creation and never touches the question's difficulty.
type Rating struct {
	ID         int64     `json:"id" db:"id"`
	QuestionID int64     `json:"question_id" db:"question_id"`
	Rating     float64   `json:"rating" db:"rating"`
	Feedback   string    `json:"feedback" db:"feedback"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateRatingReq struct {
	QuestionID int64   `json:"question_id"`
	Rating     float64 `json:"rating"`
	Feedback   string  `json:"feedback"`
}

func (r *CreateRatingReq) Validate() error {
	if r.QuestionID <= 0 {
		return apperror.Validation("question_id must be a positive id")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return apperror.Validation("rating must be between %.1f and %.1f", MinRating, MaxRating)
	}
	return nil
}
