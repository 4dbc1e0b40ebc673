package handler

import (
	"context"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/cache"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/generator"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Store interfaces mirror the repository surface so handlers can be
// tested against fakes.

type QuestionStore interface {
	CreateQuestion(ctx context.Context, q *model.Question) (*model.Question, error)
	GetQuestionByID(ctx context.Context, id int64) (*model.Question, error)
	ListQuestions(ctx context.Context, f model.ListQuestionsQuery) ([]model.Question, int, error)
	UpdateQuestion(ctx context.Context, id int64, updates map[string]interface{}) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	DistinctJobTitles(ctx context.Context) ([]string, error)
}

type QuestionSetStore interface {
	CreateQuestionSet(ctx context.Context, set *model.QuestionSet) (*model.QuestionSet, error)
	GetQuestionSetByID(ctx context.Context, id int64) (*model.QuestionSet, error)
	ListQuestionSets(ctx context.Context, skip, limit int) ([]model.QuestionSet, int, error)
	DeleteQuestionSet(ctx context.Context, id int64) error
}

type RatingStore interface {
	CreateRating(ctx context.Context, rating *model.Rating) (*model.Rating, error)
}

type StatsStore interface {
	GetStats(ctx context.Context) (*model.Stats, error)
}

type QuestionGenerator interface {
	Generate(ctx context.Context, req generator.Request) ([]model.Question, error)
}

type Handler struct {
	Logger       *zap.Logger
	Questions    QuestionStore
	Sets         QuestionSetStore
	Ratings      RatingStore
	Stats        StatsStore
	Generator    QuestionGenerator
	StatsCache   *cache.StatsCache
	DefaultCount int
}

// respondErr maps a tagged error to the right envelope; anything
// untagged is an internal error and the message stays generic.
func (h *Handler) respondErr(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		response.ValidationError(c, apperror.Message(err))
	case apperror.KindNotFound:
		response.NotFound(c, apperror.Message(err))
	default:
		response.InternalError(c, "")
	}
}

func (h *Handler) invalidateStats(ctx context.Context) {
	h.StatsCache.Invalidate(ctx)
}
