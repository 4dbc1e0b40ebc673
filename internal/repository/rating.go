package repository

import (
	"context"
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/jackc/pgx/v5"
)

// CreateRating persists one immutable feedback row. The existence check
// for the referenced question runs in the same transaction as the
// insert. Ratings never touch the question's difficulty.
func (r *Repository) CreateRating(ctx context.Context, rating *model.Rating) (*model.Rating, error) {
	var created model.Rating
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM questions WHERE id = $1)`, rating.QuestionID).Scan(&exists); err != nil {
			return fmt.Errorf("check question exists: %w", err)
		}
		if !exists {
			return apperror.NotFound("question %d not found", rating.QuestionID)
		}

		const query = `
INSERT INTO ratings (question_id, rating, feedback)
VALUES ($1, $2, $3)
RETURNING id, question_id, rating, feedback, created_at`
		row := tx.QueryRow(ctx, query, rating.QuestionID, rating.Rating, rating.Feedback)
		if err := row.Scan(&created.ID, &created.QuestionID, &created.Rating, &created.Feedback, &created.CreatedAt); err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
