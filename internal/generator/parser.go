package generator

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
)

// rawCandidate matches the JSON object the prompts ask the model for.
type rawCandidate struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Difficulty *float64 `json:"difficulty"`
	Tags       string   `json:"tags"`
}

// parseQuestions turns raw model output into validated candidates.
// Invalid candidates are dropped individually; the call only fails when
// nothing usable survives. Parsing is deterministic: the same raw text
// always yields the same candidates. The job title is used only to
// derive default tags, never to populate question fields.
func parseQuestions(raw, jobTitle, requestedType string) ([]Candidate, error) {
	candidates := parseJSONCandidates(raw, jobTitle, requestedType)
	if len(candidates) == 0 {
		candidates = parseTextCandidates(raw, jobTitle, requestedType)
	}
	if len(candidates) == 0 {
		return nil, apperror.Parse("no usable questions in AI response")
	}
	return candidates, nil
}

func parseJSONCandidates(raw, jobTitle, requestedType string) []Candidate {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || start >= end {
		return nil
	}

	var rawItems []rawCandidate
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &rawItems); err != nil {
		return nil
	}

	out := make([]Candidate, 0, len(rawItems))
	for _, item := range rawItems {
		text := strings.TrimSpace(item.Question)
		if text == "" {
			continue
		}

		qType := requestedType
		if requestedType == model.QuestionTypeMixed {
			qType = item.Type
		}
		if !model.IsStorableType(qType) {
			continue
		}

		difficulty := 3
		if item.Difficulty != nil {
			d := *item.Difficulty
			// fractional difficulties are rejected, not truncated
			if d != math.Trunc(d) || d < float64(model.MinDifficulty) || d > float64(model.MaxDifficulty) {
				continue
			}
			difficulty = int(d)
		}

		tags := pkg.NormalizeTags(item.Tags)
		if tags == "" {
			tags = pkg.DefaultTags(jobTitle)
		}

		out = append(out, Candidate{
			QuestionText: text,
			QuestionType: qType,
			Difficulty:   difficulty,
			Tags:         tags,
		})
	}
	return out
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.Replace(cleaned, "```json", "", 1)
	}
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.Replace(cleaned, "```", "", 1)
	}
	if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}

var behavioralKeywords = []string{
	"experience", "team", "conflict", "leadership", "challenge",
	"difficult", "situation", "example", "disagree", "feedback",
	"mistake", "proud", "improve", "strength", "weakness",
}

var tagKeywords = []string{
	"design", "algorithm", "data structure", "architecture", "database",
	"performance", "scalability", "leadership", "teamwork",
	"communication", "problem-solving",
}

// parseTextCandidates is the last-resort line parser for responses that
// ignored the JSON instruction. Type and difficulty are inferred from
// the question text.
func parseTextCandidates(raw, jobTitle, requestedType string) []Candidate {
	var out []Candidate
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !looksLikeQuestion(line) {
			continue
		}

		text := cleanQuestionLine(line)
		if text == "" {
			continue
		}

		out = append(out, Candidate{
			QuestionText: text,
			QuestionType: inferType(text, requestedType),
			Difficulty:   inferDifficulty(text),
			Tags:         inferTags(text, jobTitle),
		})
	}
	return out
}

func looksLikeQuestion(line string) bool {
	if strings.Contains(line, "?") || strings.HasPrefix(line, "Q:") || strings.HasPrefix(line, "-") {
		return true
	}
	if len(line) > 2 && line[0] >= '0' && line[0] <= '9' {
		rest := line[1:3]
		return rest == ". " || rest == ") "
	}
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "question ") && strings.Contains(line, ":")
}

func cleanQuestionLine(line string) string {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(line, ":") && (strings.HasPrefix(lower, "q") || strings.HasPrefix(lower, "question")):
		parts := strings.SplitN(line, ":", 2)
		line = parts[1]
	case strings.HasPrefix(line, "-"):
		line = line[1:]
	case len(line) > 2 && line[0] >= '0' && line[0] <= '9' && (line[1:3] == ". " || line[1:3] == ") "):
		line = line[3:]
	}
	return strings.TrimSpace(line)
}

func inferType(text, requestedType string) string {
	if requestedType != model.QuestionTypeMixed {
		return requestedType
	}
	lower := strings.ToLower(text)
	for _, kw := range behavioralKeywords {
		if strings.Contains(lower, kw) {
			return model.QuestionTypeBehavioral
		}
	}
	return model.QuestionTypeTechnical
}

func inferDifficulty(text string) int {
	lower := strings.ToLower(text)
	difficulty := 3
	if len(strings.Fields(text)) > 25 {
		difficulty = 4
	}
	if strings.Contains(lower, "senior") || strings.Contains(lower, "advanced") || strings.Contains(lower, "complex") {
		difficulty = 5
	}
	if strings.Contains(lower, "basic") || strings.Contains(lower, "simple") || strings.Contains(lower, "beginner") {
		difficulty = 2
	}
	return difficulty
}

func inferTags(text, jobTitle string) string {
	tags := pkg.DefaultTags(jobTitle)
	lower := strings.ToLower(text)
	for _, kw := range tagKeywords {
		if strings.Contains(lower, kw) {
			tags += "," + strings.ReplaceAll(kw, " ", "_")
		}
	}
	return tags
}
