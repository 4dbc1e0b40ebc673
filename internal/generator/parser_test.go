package generator

import (
	"testing"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions_CleanJSON(t *testing.T) {
	raw := `[
		{"question": "What is a goroutine?", "type": "technical", "difficulty": 2, "tags": "go,concurrency"},
		{"question": "Tell me about a conflict you resolved.", "type": "behavioral", "difficulty": 3, "tags": ""}
	]`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "What is a goroutine?", got[0].QuestionText)
	assert.Equal(t, model.QuestionTypeTechnical, got[0].QuestionType)
	assert.Equal(t, 2, got[0].Difficulty)
	assert.Equal(t, "go,concurrency", got[0].Tags)

	assert.Equal(t, model.QuestionTypeBehavioral, got[1].QuestionType)
	// empty tags fall back to ones derived from the job title
	assert.Equal(t, "backend,engineer", got[1].Tags)
}

func TestParseQuestions_MarkdownFences(t *testing.T) {
	raw := "```json\n[{\"question\": \"Explain indexes.\", \"type\": \"technical\", \"difficulty\": 3}]\n```"

	got, err := parseQuestions(raw, "DBA", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Explain indexes.", got[0].QuestionText)
}

func TestParseQuestions_ArrayEmbeddedInProse(t *testing.T) {
	raw := `Sure! Here are your questions:
[{"question": "What is REST?", "type": "technical", "difficulty": 1}]
Hope that helps!`

	got, err := parseQuestions(raw, "API Developer", model.QuestionTypeTechnical)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestParseQuestions_RequestedTypeOverridesParsed(t *testing.T) {
	raw := `[{"question": "Describe your leadership style.", "type": "behavioral", "difficulty": 3}]`

	got, err := parseQuestions(raw, "Engineering Manager", model.QuestionTypeTechnical)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.QuestionTypeTechnical, got[0].QuestionType)
}

func TestParseQuestions_DiscardsInvalidCandidates(t *testing.T) {
	raw := `[
		{"question": "", "type": "technical", "difficulty": 3},
		{"question": "Valid one?", "type": "technical", "difficulty": 3},
		{"question": "Bad type", "type": "quiz", "difficulty": 3},
		{"question": "Bad difficulty", "type": "technical", "difficulty": 9}
	]`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Valid one?", got[0].QuestionText)
}

func TestParseQuestions_FractionalDifficultyDiscarded(t *testing.T) {
	raw := `[
		{"question": "Almost valid?", "type": "technical", "difficulty": 5.9},
		{"question": "Also fractional?", "type": "technical", "difficulty": 3.5},
		{"question": "Whole number?", "type": "technical", "difficulty": 5}
	]`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Whole number?", got[0].QuestionText)
	assert.Equal(t, 5, got[0].Difficulty)
}

func TestParseQuestions_MissingDifficultyDefaultsToThree(t *testing.T) {
	raw := `[{"question": "What is CAP?", "type": "technical"}]`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Difficulty)
}

func TestParseQuestions_NothingUsable(t *testing.T) {
	_, err := parseQuestions("I cannot help with that.", "Backend Engineer", model.QuestionTypeMixed)
	require.Error(t, err)
	assert.Equal(t, apperror.KindParse, apperror.KindOf(err))
}

func TestParseQuestions_TextFallback(t *testing.T) {
	raw := `Here are some questions:
1. What data structure backs a hash map?
2. Tell me about a time your team disagreed with you?
- How would you design a simple rate limiter?
Q: What is the difference between a process and a thread?`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeMixed)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "What data structure backs a hash map?", got[0].QuestionText)
	assert.Equal(t, model.QuestionTypeTechnical, got[0].QuestionType)

	// "team" and "disagree" are behavioral signals
	assert.Equal(t, model.QuestionTypeBehavioral, got[1].QuestionType)

	assert.Equal(t, "How would you design a simple rate limiter?", got[2].QuestionText)
	assert.Equal(t, "What is the difference between a process and a thread?", got[3].QuestionText)
}

func TestParseQuestions_TextDifficultyHeuristics(t *testing.T) {
	raw := `1. What is a basic linked list?
2. How would you architect a complex distributed queue for senior workloads?`

	got, err := parseQuestions(raw, "Backend Engineer", model.QuestionTypeTechnical)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Difficulty)
	assert.Equal(t, 5, got[1].Difficulty)
}

func TestParseQuestions_Deterministic(t *testing.T) {
	raw := `[
		{"question": "What is a goroutine?", "type": "technical", "difficulty": 2},
		{"question": "What is a channel?", "type": "technical", "difficulty": 3}
	]`

	first, err := parseQuestions(raw, "Go Developer", model.QuestionTypeMixed)
	require.NoError(t, err)
	second, err := parseQuestions(raw, "Go Developer", model.QuestionTypeMixed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
