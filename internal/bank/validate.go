package bank

import (
	"fmt"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type Warning struct {
	Where   string
	Message string
}

// Validate reports problems the session core does not check for itself.
// None of them prevent loading.
func Validate(b *quiz.Bank) []Warning {
	var out []Warning
	if b == nil {
		return out
	}

	if len(b.FullSeries) == 0 {
		out = append(out, Warning{Where: "full_series", Message: "full series is empty"})
	}
	out = append(out, checkQuestions("full_series", b.FullSeries)...)

	for i, w := range b.Weeks {
		where := fmt.Sprintf("Weeks[%d]", i)
		if len(w.Questions) < quiz.WeekLength {
			out = append(out, Warning{
				Where:   where,
				Message: fmt.Sprintf("%q has %d questions, expected at least %d", w.Name, len(w.Questions), quiz.WeekLength),
			})
		}
		out = append(out, checkQuestions(where, w.Questions)...)
	}
	return out
}

func checkQuestions(where string, qs []quiz.Question) []Warning {
	var out []Warning
	for i, q := range qs {
		loc := fmt.Sprintf("%s.questions[%d]", where, i)
		if len(q.Options) == 0 {
			out = append(out, Warning{Where: loc, Message: "question has no options"})
			continue
		}
		if q.CorrectIndex() < 0 {
			out = append(out, Warning{Where: loc, Message: fmt.Sprintf("answer %q matches no option", q.Answer)})
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if seen[opt] {
				out = append(out, Warning{Where: loc, Message: fmt.Sprintf("duplicate option %q", opt)})
			}
			seen[opt] = true
		}
	}
	return out
}
