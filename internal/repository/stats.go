package repository

import (
	"context"
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
)

// GetStats computes the read-only aggregate view. Reads may overlap
// concurrent writes; read-committed consistency is sufficient here.
// AverageDifficulty is 0 when the store is empty.
func (r *Repository) GetStats(ctx context.Context) (*model.Stats, error) {
	stats := &model.Stats{
		QuestionsByType:     map[string]int{},
		QuestionsByJobTitle: map[string]int{},
	}

	const summaryQ = `
SELECT
	COUNT(*),
	COALESCE(AVG(difficulty), 0),
	COUNT(*) FILTER (WHERE is_flagged)
FROM questions`
	if err := r.db.QueryRow(ctx, summaryQ).Scan(
		&stats.TotalQuestions, &stats.AverageDifficulty, &stats.FlaggedQuestions,
	); err != nil {
		return nil, fmt.Errorf("question summary: %w", err)
	}

	typeRows, err := r.db.Query(ctx, `SELECT question_type, COUNT(*) FROM questions GROUP BY question_type`)
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var qType string
		var count int
		if err := typeRows.Scan(&qType, &count); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		stats.QuestionsByType[qType] = count
	}
	if typeRows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", typeRows.Err())
	}

	titleRows, err := r.db.Query(ctx, `SELECT job_title, COUNT(*) FROM questions GROUP BY job_title`)
	if err != nil {
		return nil, fmt.Errorf("count by job title: %w", err)
	}
	defer titleRows.Close()
	for titleRows.Next() {
		var title string
		var count int
		if err := titleRows.Scan(&title, &count); err != nil {
			return nil, fmt.Errorf("scan job title count: %w", err)
		}
		stats.QuestionsByJobTitle[title] = count
	}
	if titleRows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", titleRows.Err())
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM question_sets`).Scan(&stats.TotalQuestionSets); err != nil {
		return nil, fmt.Errorf("count question sets: %w", err)
	}

	return stats, nil
}
