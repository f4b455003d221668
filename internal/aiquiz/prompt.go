package aiquiz

import (
	"fmt"
	"strings"
)

const (
	defaultCount      = 3
	defaultDifficulty = "medium"
)

const systemPrompt = `
You generate educational multiple-choice questions for a weekly practice quiz.

Rules:
1. Only generate questions about study subjects.
2. Every question has exactly one correct option.
3. Difficulty is one of: easy, medium, hard.
4. Every question has:
   - "question": the question text
   - "options": 4 plausible options, without letter prefixes
   - "answer": the exact text of the correct option, copied from "options"
   - "explanation": a short, objective explanation of the correct option

Expected JSON:

[
  {
    "topic": "<topic>",
    "difficulty": "<easy | medium | hard>",
    "question": "<question text>",
    "options": ["...", "...", "...", "..."],
    "answer": "<one of the options, verbatim>",
    "explanation": "<why it is correct>"
  }
]

Quality guidelines:
- Do not make the correct option obvious. Options should have similar length and structure.
- Use plausible distractors.
- Never reveal the answer in the question text.
- Always return pure, valid JSON with nothing outside it.
`

// clampCount keeps a request within a single weekly set.
func clampCount(n int) int {
	switch {
	case n <= 0:
		return defaultCount
	case n > 10:
		return 10
	default:
		return n
	}
}

func BuildUserPrompt(req QuestionRequest) string {
	difficulty := strings.TrimSpace(req.Difficulty)
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	extra := ""
	if req.Context != "" {
		extra = fmt.Sprintf("Use the following material as context: %s. ", req.Context)
	}

	return fmt.Sprintf(
		"Generate %d multiple-choice questions about %q with %q difficulty. %s"+
			"Follow the JSON format from the system prompt; \"answer\" must repeat one option verbatim.",
		clampCount(req.Count), req.Topic, difficulty, extra,
	)
}
