package domain

// Question — один вопрос квиза. Answer должен совпадать с одним из Options,
// но это нигде не проверяется.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type Quiz struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questionData"`
}
