package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
)

// Client is a minimal Gemini generateContent client. One invocation is
// one outbound request; retry policy lives with the caller.
type Client struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		base:   "https://generativelanguage.googleapis.com/v1beta",
		http:   &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GenerateContent sends a single prompt and returns the raw model text.
// Failures come back as upstream-tagged errors so the orchestrator can
// absorb them.
func (c *Client) GenerateContent(ctx context.Context, prompt string, temperature float32) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.base, c.model)
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     temperature,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 4096,
		},
	}

	b, _ := json.Marshal(body)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	r.Header.Set("x-goog-api-key", c.apiKey)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		if isTimeout(err) {
			return "", apperror.Upstream("gemini request timed out", err)
		}
		return "", apperror.Upstream("gemini unreachable", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.Upstream("read gemini response", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", apperror.Upstream("gemini quota exceeded", fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}
	if resp.StatusCode >= 400 {
		return "", apperror.Upstream("gemini api error", fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var gr generateResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return "", apperror.Upstream("malformed gemini response", err)
	}
	if gr.Error != nil {
		return "", apperror.Upstream("gemini api error", fmt.Errorf("%s: %s", gr.Error.Status, gr.Error.Message))
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", apperror.Upstream("malformed gemini response", errors.New("no candidates returned"))
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
