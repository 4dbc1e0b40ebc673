package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/jackc/pgx/v5"
)

const questionColumns = `id, job_title, question_text, question_type, difficulty, is_flagged, tags, created_at, updated_at`

func scanQuestion(row pgx.Row) (*model.Question, error) {
	var q model.Question
	err := row.Scan(
		&q.ID, &q.JobTitle, &q.QuestionText, &q.QuestionType,
		&q.Difficulty, &q.IsFlagged, &q.Tags, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) CreateQuestion(ctx context.Context, q *model.Question) (*model.Question, error) {
	const query = `
INSERT INTO questions (job_title, question_text, question_type, difficulty, is_flagged, tags)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + questionColumns

	row := r.db.QueryRow(ctx, query,
		q.JobTitle, q.QuestionText, q.QuestionType, q.Difficulty, q.IsFlagged, q.Tags,
	)
	created, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	return created, nil
}

// CreateQuestionBatch persists a generated batch as one unit: all rows
// commit together or none do.
func (r *Repository) CreateQuestionBatch(ctx context.Context, questions []model.Question) ([]model.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	const query = `
INSERT INTO questions (job_title, question_text, question_type, difficulty, is_flagged, tags)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + questionColumns

	out := make([]model.Question, 0, len(questions))
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, q := range questions {
			batch.Queue(query, q.JobTitle, q.QuestionText, q.QuestionType, q.Difficulty, q.IsFlagged, q.Tags)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range questions {
			saved, err := scanQuestion(br.QueryRow())
			if err != nil {
				return fmt.Errorf("batch insert question %d: %w", i, err)
			}
			out = append(out, *saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetQuestionByID(ctx context.Context, id int64) (*model.Question, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	q, err := scanQuestion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("question %d not found", id)
		}
		return nil, fmt.Errorf("scan question: %w", err)
	}
	return q, nil
}

// ListQuestions returns a page in creation order plus the total match
// count. The job title filter is a case-insensitive partial match.
func (r *Repository) ListQuestions(ctx context.Context, f model.ListQuestionsQuery) ([]model.Question, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if f.JobTitle != "" {
		args = append(args, "%"+f.JobTitle+"%")
		where += fmt.Sprintf(" AND job_title ILIKE $%d", len(args))
	}
	if f.QuestionType != "" {
		args = append(args, f.QuestionType)
		where += fmt.Sprintf(" AND question_type = $%d", len(args))
	}
	if f.FlaggedOnly {
		where += " AND is_flagged = TRUE"
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM questions"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	query := "SELECT " + questionColumns + " FROM questions" + where +
		fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	out := make([]model.Question, 0, f.Limit)
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(
			&q.ID, &q.JobTitle, &q.QuestionText, &q.QuestionType,
			&q.Difficulty, &q.IsFlagged, &q.Tags, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan question row: %w", err)
		}
		out = append(out, q)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

// UpdateQuestion applies a partial update. Only curation fields are
// updatable; job_title, question_text and question_type are immutable.
func (r *Repository) UpdateQuestion(ctx context.Context, id int64, updates map[string]interface{}) (*model.Question, error) {
	validCols := map[string]bool{
		"difficulty": true, "is_flagged": true, "tags": true,
	}

	query := "UPDATE questions SET updated_at = now()"
	args := []interface{}{}

	for col, val := range updates {
		if !validCols[col] {
			continue // Skip invalid columns
		}
		args = append(args, val)
		query += fmt.Sprintf(", %s = $%d", col, len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", len(args)) + questionColumns

	q, err := scanQuestion(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("question %d not found", id)
		}
		return nil, fmt.Errorf("update question: %w", err)
	}
	return q, nil
}

// DeleteQuestion removes a question together with its ratings and set
// memberships in one transaction.
func (r *Repository) DeleteQuestion(ctx context.Context, id int64) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ratings WHERE question_id = $1`, id); err != nil {
			return fmt.Errorf("delete ratings: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM question_set_items WHERE question_id = $1`, id); err != nil {
			return fmt.Errorf("delete set memberships: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.NotFound("question %d not found", id)
		}
		return nil
	})
}

func (r *Repository) DistinctJobTitles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT job_title FROM questions ORDER BY job_title ASC`)
	if err != nil {
		return nil, fmt.Errorf("query job titles: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan job title: %w", err)
		}
		out = append(out, title)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
