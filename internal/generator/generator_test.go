package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	batches    [][]Candidate
	errs       []error
	calls      int
	simplified []bool
}

func (f *fakeSource) Questions(_ context.Context, _ string, _ int, _ string, simplified bool) ([]Candidate, error) {
	i := f.calls
	f.calls++
	f.simplified = append(f.simplified, simplified)

	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var cands []Candidate
	if i < len(f.batches) {
		cands = f.batches[i]
	}
	return cands, err
}

type fakeStore struct {
	saved []model.Question
	err   error
	calls int
}

func (f *fakeStore) CreateQuestionBatch(_ context.Context, questions []model.Question) ([]model.Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.saved = questions

	out := make([]model.Question, len(questions))
	now := time.Now()
	for i, q := range questions {
		q.ID = int64(i + 1)
		q.CreatedAt = now
		q.UpdatedAt = now
		out[i] = q
	}
	return out, nil
}

func techCandidates(texts ...string) []Candidate {
	out := make([]Candidate, 0, len(texts))
	for _, text := range texts {
		out = append(out, Candidate{
			QuestionText: text,
			QuestionType: model.QuestionTypeTechnical,
			Difficulty:   2,
			Tags:         "go",
		})
	}
	return out
}

func newTestGenerator(source Source, store Store) *Generator {
	return New(source, NewFallback(), store, zap.NewNop())
}

func TestGenerate_RequestValidation(t *testing.T) {
	store := &fakeStore{}
	g := newTestGenerator(&fakeSource{}, store)

	tests := []struct {
		name string
		req  Request
	}{
		{"blank job title", Request{JobTitle: "  ", Count: 5, QuestionType: "technical"}},
		{"job title too short", Request{JobTitle: "x", Count: 5, QuestionType: "technical"}},
		{"count too small", Request{JobTitle: "Backend Engineer", Count: 0, QuestionType: "technical"}},
		{"count too large", Request{JobTitle: "Backend Engineer", Count: 101, QuestionType: "technical"}},
		{"bad type", Request{JobTitle: "Backend Engineer", Count: 5, QuestionType: "trivia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
	assert.Zero(t, store.calls, "nothing may be persisted on validation failure")
}

func TestGenerate_HappyPath(t *testing.T) {
	source := &fakeSource{batches: [][]Candidate{techCandidates("q1?", "q2?", "q3?")}}
	store := &fakeStore{}
	g := newTestGenerator(source, store)

	got, err := g.Generate(context.Background(), Request{JobTitle: "Backend Engineer", Count: 3, QuestionType: "technical"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 1, source.calls, "no retry when the live source delivers")
	assert.Equal(t, 1, store.calls)
	for i, q := range got {
		assert.Equal(t, "Backend Engineer", q.JobTitle)
		assert.Equal(t, int64(i+1), q.ID)
		assert.False(t, q.IsFlagged)
	}
}

func TestGenerate_UpstreamFailureFallsBack(t *testing.T) {
	source := &fakeSource{errs: []error{apperror.Upstream("gemini unreachable", errors.New("dial tcp: refused"))}}
	store := &fakeStore{}
	g := newTestGenerator(source, store)

	got, err := g.Generate(context.Background(), Request{JobTitle: "Backend Engineer", Count: 4, QuestionType: "technical"})
	require.NoError(t, err, "upstream failures must be absorbed")
	require.Len(t, got, 4)

	assert.Equal(t, 1, source.calls, "provider failure goes straight to fallback, no retry")
	for _, q := range got {
		assert.Equal(t, model.QuestionTypeTechnical, q.QuestionType)
		assert.Equal(t, 3, q.Difficulty)
		assert.Contains(t, q.QuestionText, "Backend Engineer")
	}
}

func TestGenerate_ShortBatchToppedUp(t *testing.T) {
	source := &fakeSource{
		batches: [][]Candidate{
			techCandidates("ai q1?", "ai q2?"),
			techCandidates("ai q3?"),
		},
	}
	store := &fakeStore{}
	g := newTestGenerator(source, store)

	got, err := g.Generate(context.Background(), Request{JobTitle: "Backend Engineer", Count: 5, QuestionType: "technical"})
	require.NoError(t, err)
	require.Len(t, got, 5)

	require.Equal(t, 2, source.calls)
	assert.False(t, source.simplified[0])
	assert.True(t, source.simplified[1], "second attempt uses the simplified prompt")

	// AI-derived questions come first, in order; fallback fills the rest
	assert.Equal(t, "ai q1?", got[0].QuestionText)
	assert.Equal(t, "ai q2?", got[1].QuestionText)
	assert.Equal(t, "ai q3?", got[2].QuestionText)
	assert.Equal(t, 3, got[3].Difficulty)
	assert.Equal(t, 3, got[4].Difficulty)
}

func TestGenerate_OverDeliveryTrimmed(t *testing.T) {
	source := &fakeSource{batches: [][]Candidate{techCandidates("q1?", "q2?", "q3?", "q4?")}}
	store := &fakeStore{}
	g := newTestGenerator(source, store)

	got, err := g.Generate(context.Background(), Request{JobTitle: "Backend Engineer", Count: 2, QuestionType: "technical"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q1?", got[0].QuestionText)
	assert.Equal(t, "q2?", got[1].QuestionText)
}

func TestGenerate_MixedStoresOnlyConcreteTypes(t *testing.T) {
	source := &fakeSource{errs: []error{apperror.Parse("no usable questions in AI response")}}
	store := &fakeStore{}
	g := newTestGenerator(source, store)

	got, err := g.Generate(context.Background(), Request{JobTitle: "Data Scientist", Count: 7, QuestionType: "mixed"})
	require.NoError(t, err)
	require.Len(t, got, 7)

	for _, q := range got {
		assert.True(t, model.IsStorableType(q.QuestionType), "stored type %q", q.QuestionType)
		assert.GreaterOrEqual(t, q.Difficulty, model.MinDifficulty)
		assert.LessOrEqual(t, q.Difficulty, model.MaxDifficulty)
	}
}

func TestGenerate_PersistenceFailureSurfaced(t *testing.T) {
	source := &fakeSource{batches: [][]Candidate{techCandidates("q1?")}}
	store := &fakeStore{err: errors.New("connection reset")}
	g := newTestGenerator(source, store)

	_, err := g.Generate(context.Background(), Request{JobTitle: "Backend Engineer", Count: 1, QuestionType: "technical"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}
