package aiquiz

import "github.com/saulo-duarte/chronos-quiz/internal/quiz"

// Generated is one question as the model returns it.
type Generated struct {
	Topic       string   `json:"topic"`
	Difficulty  string   `json:"difficulty"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type QuestionRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Context    string `json:"context,omitempty"`
}

type QuestionResponse struct {
	Questions []quiz.Question `json:"questions"`
	Rejected  int             `json:"rejected"`
}
