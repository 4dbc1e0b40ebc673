package generator

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAISource is the alternative live provider, selected via
// AI_PROVIDER=openai.
type OpenAISource struct {
	client *openai.Client
	model  string
}

func NewOpenAISource(apiKey, model string, timeout time.Duration) *OpenAISource {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAISource{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *OpenAISource) Questions(ctx context.Context, jobTitle string, count int, questionType string, simplified bool) ([]Candidate, error) {
	prompt := buildPrompt(jobTitle, count, questionType)
	temperature := float32(0.7)
	if simplified {
		prompt = buildSimplifiedPrompt(jobTitle, count, questionType)
		temperature = 0.5
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert interviewer. Respond with a JSON array of interview questions only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperror.Upstream("malformed openai response", errors.New("no choices returned"))
	}
	return parseQuestions(resp.Choices[0].Message.Content, jobTitle, questionType)
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return apperror.Upstream("openai quota exceeded", err)
		}
		return apperror.Upstream("openai api error", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Upstream("openai request timed out", err)
	}
	return apperror.Upstream("openai unreachable", err)
}
