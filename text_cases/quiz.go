package textcases

import "quizlink/domain"

const DefaultBaseURL = "https://yangliu-hapara.github.io/open-quiz"

// SampleQuiz возвращает встроенный пример квиза.
// Каждый вызов отдает новую копию, так что вызывающий может ее менять.
func SampleQuiz() domain.Quiz {
	return domain.Quiz{
		Title:       "Math Quiz",
		Description: "Test your basic math skills",
		Questions: []domain.Question{
			{
				Question: "What is 2+2?",
				Options:  []string{"3", "4", "5"},
				Answer:   "4",
			},
			{
				Question: "What is 3*3?",
				Options:  []string{"6", "9", "12"},
				Answer:   "9",
			},
			{
				Question: "What is 10/2?",
				Options:  []string{"4", "5", "6"},
				Answer:   "5",
			},
		},
	}
}
