package generator

import (
	"context"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/gemini"
)

// GeminiSource produces candidates through the Gemini REST client.
type GeminiSource struct {
	client *gemini.Client
}

func NewGeminiSource(client *gemini.Client) *GeminiSource {
	return &GeminiSource{client: client}
}

func (s *GeminiSource) Questions(ctx context.Context, jobTitle string, count int, questionType string, simplified bool) ([]Candidate, error) {
	prompt := buildPrompt(jobTitle, count, questionType)
	temperature := float32(0.7)
	if simplified {
		prompt = buildSimplifiedPrompt(jobTitle, count, questionType)
		temperature = 0.5
	}

	raw, err := s.client.GenerateContent(ctx, prompt, temperature)
	if err != nil {
		return nil, err
	}
	return parseQuestions(raw, jobTitle, questionType)
}
