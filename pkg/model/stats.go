package model

// Stats is a read-only aggregate view over the store. AverageDifficulty
// is 0 when no questions exist.
type Stats struct {
	TotalQuestions      int            `json:"total_questions"`
	QuestionsByType     map[string]int `json:"questions_by_type"`
	QuestionsByJobTitle map[string]int `json:"questions_by_job_title"`
	AverageDifficulty   float64        `json:"average_difficulty"`
	FlaggedQuestions    int            `json:"flagged_questions"`
	TotalQuestionSets   int            `json:"total_question_sets"`
}
