package bank

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

// Build groups a flat question list into weeks of weekLength questions.
// Questions without an answer are dropped. maxWeeks <= 0 keeps every full week.
// The full series is every kept question, in order.
func Build(questions []quiz.Question, weekLength, maxWeeks int) *quiz.Bank {
	if weekLength <= 0 {
		weekLength = quiz.WeekLength
	}

	kept := make([]quiz.Question, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Answer) == "" {
			continue
		}
		kept = append(kept, q)
	}

	b := &quiz.Bank{FullSeries: kept}
	for start := 0; start+weekLength <= len(kept); start += weekLength {
		if maxWeeks > 0 && len(b.Weeks) == maxWeeks {
			break
		}
		b.Weeks = append(b.Weeks, quiz.Week{
			Name:      fmt.Sprintf("Week %d", len(b.Weeks)+1),
			Questions: kept[start : start+weekLength],
		})
	}
	return b
}
