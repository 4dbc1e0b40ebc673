package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/jackc/pgx/v5"
)

// CreateQuestionSet persists a set and its ordered membership
// all-or-nothing. The existence check for every referenced question runs
// inside the same transaction as the inserts, so a concurrent question
// delete cannot leave a dangling reference.
func (r *Repository) CreateQuestionSet(ctx context.Context, set *model.QuestionSet) (*model.QuestionSet, error) {
	var created model.QuestionSet
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		var count int
		const existsQ = `SELECT COUNT(id) FROM questions WHERE id = ANY($1)`
		if err := tx.QueryRow(ctx, existsQ, set.QuestionIDs).Scan(&count); err != nil {
			return fmt.Errorf("check question ids: %w", err)
		}
		if count != len(set.QuestionIDs) {
			return apperror.NotFound("one or more question ids do not exist")
		}

		const insertSet = `
INSERT INTO question_sets (name, description, job_title)
VALUES ($1, $2, $3)
RETURNING id, name, description, job_title, created_at, updated_at`
		row := tx.QueryRow(ctx, insertSet, set.Name, set.Description, set.JobTitle)
		if err := row.Scan(
			&created.ID, &created.Name, &created.Description,
			&created.JobTitle, &created.CreatedAt, &created.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert question set: %w", err)
		}

		batch := &pgx.Batch{}
		const insertItem = `INSERT INTO question_set_items (set_id, question_id, position) VALUES ($1, $2, $3)`
		for pos, qid := range set.QuestionIDs {
			batch.Queue(insertItem, created.ID, qid, pos)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for i := 0; i < len(set.QuestionIDs); i++ {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("insert set member %d: %w", i, err)
			}
		}

		created.QuestionIDs = set.QuestionIDs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetQuestionSetByID(ctx context.Context, id int64) (*model.QuestionSet, error) {
	const query = `SELECT id, name, description, job_title, created_at, updated_at FROM question_sets WHERE id = $1`

	var set model.QuestionSet
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(&set.ID, &set.Name, &set.Description, &set.JobTitle, &set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("question set %d not found", id)
		}
		return nil, fmt.Errorf("scan question set: %w", err)
	}

	memberships, err := r.setMemberships(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	set.QuestionIDs = memberships[id]
	return &set, nil
}

// ListQuestionSets returns sets in creation order with their ordered
// member ids attached.
func (r *Repository) ListQuestionSets(ctx context.Context, skip, limit int) ([]model.QuestionSet, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM question_sets`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count question sets: %w", err)
	}

	const query = `
SELECT id, name, description, job_title, created_at, updated_at
FROM question_sets
ORDER BY id ASC
LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("query question sets: %w", err)
	}
	defer rows.Close()

	out := make([]model.QuestionSet, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var set model.QuestionSet
		if err := rows.Scan(&set.ID, &set.Name, &set.Description, &set.JobTitle, &set.CreatedAt, &set.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan question set row: %w", err)
		}
		out = append(out, set)
		ids = append(ids, set.ID)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}

	memberships, err := r.setMemberships(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range out {
		out[i].QuestionIDs = memberships[out[i].ID]
	}
	return out, total, nil
}

func (r *Repository) setMemberships(ctx context.Context, setIDs []int64) (map[int64][]int64, error) {
	memberships := make(map[int64][]int64, len(setIDs))
	if len(setIDs) == 0 {
		return memberships, nil
	}

	const query = `
SELECT set_id, question_id
FROM question_set_items
WHERE set_id = ANY($1)
ORDER BY set_id, position ASC`

	rows, err := r.db.Query(ctx, query, setIDs)
	if err != nil {
		return nil, fmt.Errorf("query set memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var setID, questionID int64
		if err := rows.Scan(&setID, &questionID); err != nil {
			return nil, fmt.Errorf("scan set membership: %w", err)
		}
		memberships[setID] = append(memberships[setID], questionID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return memberships, nil
}

// DeleteQuestionSet removes a set and its memberships; member questions
// stay untouched.
func (r *Repository) DeleteQuestionSet(ctx context.Context, id int64) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM question_set_items WHERE set_id = $1`, id); err != nil {
			return fmt.Errorf("delete set memberships: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM question_sets WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete question set: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.NotFound("question set %d not found", id)
		}
		return nil
	})
}
