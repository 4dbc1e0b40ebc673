package generator

import (
	"fmt"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
)

var technicalTemplates = []string{
	"What are the core technical skills required to succeed as a %s, and which do you consider your strongest?",
	"Walk me through a technically challenging project you would expect to work on as a %s. How would you approach it?",
	"How would you design a system that a %s typically owns, and what trade-offs would you weigh?",
	"What tools and technologies do you rely on most as a %s, and why?",
	"How do you debug a hard production issue in the systems a %s is responsible for?",
	"How do you keep your technical knowledge current in the %s field?",
	"Describe how you would review a teammate's work as a %s. What do you look for?",
	"What performance or scalability concerns matter most in a %s role, and how do you address them?",
}

var behavioralTemplates = []string{
	"Tell me about a time you faced a significant challenge as a %s. How did you handle it?",
	"Describe a situation where you disagreed with a teammate while working as a %s. What did you do?",
	"How do you prioritize competing deadlines in a %s role?",
	"Give an example of a mistake you made as a %s and what you learned from it.",
	"How do you communicate complex ideas to non-technical stakeholders as a %s?",
	"Describe a time you had to learn something new quickly for a %s position.",
	"What motivates you in a %s role, and how do you stay productive under pressure?",
	"Tell me about a time you received difficult feedback as a %s. How did you respond?",
}

// Fallback synthesizes questions from static templates. It has no
// external dependency, never fails, and always returns exactly count
// candidates, cycling templates when count exceeds the pool. Every
// candidate gets the mid-range difficulty.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Questions(jobTitle string, count int, questionType string) []Candidate {
	tags := pkg.DefaultTags(jobTitle)
	used := map[string]int{}
	out := make([]Candidate, 0, count)
	for i := 0; i < count; i++ {
		qType := questionType
		if questionType == model.QuestionTypeMixed {
			if i%2 == 0 {
				qType = model.QuestionTypeTechnical
			} else {
				qType = model.QuestionTypeBehavioral
			}
		}

		templates := technicalTemplates
		if qType == model.QuestionTypeBehavioral {
			templates = behavioralTemplates
		}

		idx := used[qType]
		used[qType]++

		out = append(out, Candidate{
			QuestionText: fmt.Sprintf(templates[idx%len(templates)], jobTitle),
			QuestionType: qType,
			Difficulty:   3,
			Tags:         tags,
		})
	}
	return out
}
