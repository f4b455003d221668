package quiz

// WeekLength is the number of questions a weekly session covers.
const WeekLength = 10

type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// CorrectIndex is the position of Answer within Options, or -1 when the
// answer text matches none of them.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

type Week struct {
	Name      string     `json:"Week_name"`
	Questions []Question `json:"questions"`
}

// Bank is the loaded question-bank document. It is never modified after loading.
type Bank struct {
	FullSeries []Question `json:"full_series"`
	Weeks      []Week     `json:"Weeks"`
}

func (b *Bank) Week(index int) (Week, error) {
	if b == nil {
		return Week{}, ErrNoQuestionBank
	}
	if index < 0 || index >= len(b.Weeks) {
		return Week{}, ErrInvalidWeekIndex
	}
	return b.Weeks[index], nil
}
