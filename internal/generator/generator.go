package generator

import (
	"context"
	"strings"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the slice of the persistence layer the orchestrator needs.
type Store interface {
	CreateQuestionBatch(ctx context.Context, questions []model.Question) ([]model.Question, error)
}

// Generator turns a generation request into a persisted batch of
// questions. Upstream and parse failures are absorbed here: the live
// source gets one standard attempt and one simplified retry, and the
// template fallback fills any remaining shortfall, so a valid request
// only ever fails on persistence.
type Generator struct {
	source   Source
	fallback *Fallback
	store    Store
	log      *zap.SugaredLogger
}

func New(source Source, fallback *Fallback, store Store, log *zap.Logger) *Generator {
	return &Generator{
		source:   source,
		fallback: fallback,
		store:    store,
		log:      log.Sugar(),
	}
}

// Generate returns exactly req.Count persisted questions. Nothing is
// written until the full batch is assembled; the batch insert is one
// transaction.
func (g *Generator) Generate(ctx context.Context, req Request) ([]model.Question, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobTitle := strings.TrimSpace(req.JobTitle)
	runID := uuid.NewString()

	candidates := g.collect(ctx, runID, jobTitle, req.Count, req.QuestionType)

	batch := make([]model.Question, 0, req.Count)
	for _, c := range candidates {
		batch = append(batch, model.Question{
			JobTitle:     jobTitle,
			QuestionText: c.QuestionText,
			QuestionType: c.QuestionType,
			Difficulty:   c.Difficulty,
			Tags:         c.Tags,
		})
	}

	saved, err := g.store.CreateQuestionBatch(ctx, batch)
	if err != nil {
		return nil, apperror.Persistence("failed to persist generated questions", err)
	}

	g.log.Infow("generation completed",
		"run_id", runID,
		"job_title", jobTitle,
		"count", len(saved),
	)
	return saved, nil
}

// collect gathers exactly count candidates: live attempt, simplified
// retry for the shortfall, then fallback for whatever is still missing.
func (g *Generator) collect(ctx context.Context, runID, jobTitle string, count int, questionType string) []Candidate {
	var out []Candidate

	cands, err := g.source.Questions(ctx, jobTitle, count, questionType, false)
	if err != nil {
		g.log.Warnw("live generation attempt failed", "run_id", runID, "err", err)
	} else {
		out = append(out, cands...)
	}

	if remaining := count - len(out); remaining > 0 && err == nil {
		g.log.Infow("live attempt under-delivered, retrying with simplified prompt",
			"run_id", runID, "have", len(out), "want", count)
		cands, retryErr := g.source.Questions(ctx, jobTitle, remaining, questionType, true)
		if retryErr != nil {
			g.log.Warnw("simplified retry failed", "run_id", runID, "err", retryErr)
		} else {
			out = append(out, cands...)
		}
	}

	if remaining := count - len(out); remaining > 0 {
		g.log.Infow("topping up with fallback questions", "run_id", runID, "shortfall", remaining)
		out = append(out, g.fallback.Questions(jobTitle, remaining, questionType)...)
	}

	return out[:count]
}
