package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/generator"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeQuestionStore struct {
	question  *model.Question
	questions []model.Question
	total     int
	titles    []string
	err       error

	lastFilter  model.ListQuestionsQuery
	lastUpdates map[string]interface{}
	deletedID   int64
}

func (f *fakeQuestionStore) CreateQuestion(_ context.Context, q *model.Question) (*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *q
	created.ID = 1
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (f *fakeQuestionStore) GetQuestionByID(_ context.Context, id int64) (*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.question, nil
}

func (f *fakeQuestionStore) ListQuestions(_ context.Context, filter model.ListQuestionsQuery) ([]model.Question, int, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.questions, f.total, nil
}

func (f *fakeQuestionStore) UpdateQuestion(_ context.Context, id int64, updates map[string]interface{}) (*model.Question, error) {
	f.lastUpdates = updates
	if f.err != nil {
		return nil, f.err
	}
	return f.question, nil
}

func (f *fakeQuestionStore) DeleteQuestion(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeQuestionStore) DistinctJobTitles(_ context.Context) ([]string, error) {
	return f.titles, f.err
}

type fakeSetStore struct {
	set  *model.QuestionSet
	sets []model.QuestionSet
	err  error
}

func (f *fakeSetStore) CreateQuestionSet(_ context.Context, set *model.QuestionSet) (*model.QuestionSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *set
	created.ID = 1
	return &created, nil
}

func (f *fakeSetStore) GetQuestionSetByID(_ context.Context, id int64) (*model.QuestionSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.set, nil
}

func (f *fakeSetStore) ListQuestionSets(_ context.Context, skip, limit int) ([]model.QuestionSet, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.sets, len(f.sets), nil
}

func (f *fakeSetStore) DeleteQuestionSet(_ context.Context, id int64) error {
	return f.err
}

type fakeRatingStore struct {
	err error
}

func (f *fakeRatingStore) CreateRating(_ context.Context, rating *model.Rating) (*model.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *rating
	created.ID = 1
	created.CreatedAt = time.Now()
	return &created, nil
}

type fakeStatsStore struct {
	stats *model.Stats
	err   error
	calls int
}

func (f *fakeStatsStore) GetStats(_ context.Context) (*model.Stats, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

type fakeGenerator struct {
	questions []model.Question
	err       error
	lastReq   generator.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req generator.Request) ([]model.Question, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type testEnv struct {
	questions *fakeQuestionStore
	sets      *fakeSetStore
	ratings   *fakeRatingStore
	stats     *fakeStatsStore
	gen       *fakeGenerator
	router    *gin.Engine
}

func newTestEnv() *testEnv {
	env := &testEnv{
		questions: &fakeQuestionStore{},
		sets:      &fakeSetStore{},
		ratings:   &fakeRatingStore{},
		stats:     &fakeStatsStore{},
		gen:       &fakeGenerator{},
	}

	h := &Handler{
		Logger:       zap.NewNop(),
		Questions:    env.questions,
		Sets:         env.sets,
		Ratings:      env.ratings,
		Stats:        env.stats,
		Generator:    env.gen,
		DefaultCount: 5,
	}

	r := gin.New()
	r.POST("/questions/generate", h.GenerateQuestions)
	r.GET("/questions", h.ListQuestions)
	r.GET("/questions/job-titles", h.ListJobTitles)
	r.POST("/questions", h.CreateQuestion)
	r.GET("/questions/:id", h.GetQuestion)
	r.PATCH("/questions/:id", h.UpdateQuestion)
	r.DELETE("/questions/:id", h.DeleteQuestion)
	r.POST("/question-sets", h.CreateQuestionSet)
	r.GET("/question-sets", h.ListQuestionSets)
	r.GET("/question-sets/:id", h.GetQuestionSet)
	r.DELETE("/question-sets/:id", h.DeleteQuestionSet)
	r.POST("/ratings", h.RateQuestion)
	r.GET("/stats", h.GetStats)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env response.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (e *testEnv) doRaw(t *testing.T, method, path, raw string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(raw)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env response.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func notFoundErr() error {
	return apperror.NotFound("question 42 not found")
}

func modelValidationErr() error {
	return apperror.Validation("job_title must be between 2 and 100 characters")
}

func persistenceErr() error {
	return apperror.Persistence("failed to persist batch", context.DeadlineExceeded)
}
