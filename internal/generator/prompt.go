package generator

import (
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
)

// buildPrompt is the standard first-attempt prompt: role framing, a
// per-type focus, a difficulty rubric, and a strict JSON-only output
// instruction.
func buildPrompt(jobTitle string, count int, questionType string) string {
	var focus, instruction string
	switch questionType {
	case model.QuestionTypeTechnical:
		focus = "technical skills, coding problems, system design, and domain-specific knowledge"
		instruction = "Ensure questions are technically relevant to the specific role and include problems that test their expertise."
	case model.QuestionTypeBehavioral:
		focus = "soft skills, past experiences, teamwork, leadership, and problem-solving scenarios"
		instruction = "Create scenario-based questions that reveal how the candidate handles real workplace situations."
	default:
		focus = "a mix of technical skills and behavioral aspects"
		instruction = "Balance technical and behavioral questions to assess both skills and cultural fit."
	}

	return fmt.Sprintf(`You are an expert technical interviewer with deep knowledge of %[1]s roles.

Task: Generate %[2]d high-quality, realistic interview questions for a %[1]s position.
Focus on %[3]s.

%[4]s

Include a range of difficulty levels (1-5 scale) where:
- Level 1: Entry-level/basic knowledge questions
- Level 3: Mid-level experience questions
- Level 5: Senior/expert level questions

Format your response as a well-formed JSON array ONLY with this structure:
[
  {
    "question": "Your detailed question here...",
    "type": "%[5]s",
    "difficulty": number between 1-5,
    "tags": "comma,separated,relevant,keywords"
  }
]

Do not include any explanations, markdown formatting, or additional text outside of the JSON array.
`, jobTitle, count, focus, instruction, promptType(questionType))
}

// buildSimplifiedPrompt is the terser retry prompt used when the first
// attempt under-delivers.
func buildSimplifiedPrompt(jobTitle string, count int, questionType string) string {
	return fmt.Sprintf(`Generate %d interview questions for a %s position.
Make them %s questions.
Return ONLY a valid JSON array like this:
[{"question": "Question text here", "type": "%s", "difficulty": 3, "tags": "relevant,tags"}]
`, count, jobTitle, questionType, promptType(questionType))
}

func promptType(questionType string) string {
	if questionType == model.QuestionTypeMixed {
		return "technical or behavioral"
	}
	return questionType
}
