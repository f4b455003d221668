package quiz

import (
	"fmt"
	"time"
)

const NotAnswered = "Not answered"

type Feedback struct {
	Correct     bool   `json:"correct"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
}

func newFeedback(q Question, option int) Feedback {
	fb := Feedback{Message: "Incorrect!", Explanation: q.Explanation}
	if option == q.CorrectIndex() {
		fb.Correct = true
		fb.Message = "Correct!"
	}
	return fb
}

// Snapshot is the read-only state a presentation layer renders after every change.
type Snapshot struct {
	State           State     `json:"state"`
	Mode            Mode      `json:"mode"`
	ModeLabel       string    `json:"mode_label"`
	ScopeLabel      string    `json:"scope_label"`
	Week            int       `json:"week"`
	Index           int       `json:"index"`
	Total           int       `json:"total"`
	Question        Question  `json:"question"`
	Selected        *int      `json:"selected,omitempty"`
	CanRetreat      bool      `json:"can_retreat"`
	NextLabel       string    `json:"next_label"`
	ProgressText    string    `json:"progress_text"`
	ProgressPercent int       `json:"progress_percent"`
	StartedAt       time.Time `json:"started_at"`
}

func (s *Session) ScopeLabel() string {
	if s == nil {
		return ""
	}
	if s.mode == ModeWeekly {
		return fmt.Sprintf("Week %d", s.week+1)
	}
	return "All Questions"
}

func (s *Session) Snapshot() (Snapshot, error) {
	if err := s.started(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		State:           s.state,
		Mode:            s.mode,
		ModeLabel:       s.mode.Label(),
		ScopeLabel:      s.ScopeLabel(),
		Week:            s.week,
		Index:           s.current,
		Total:           s.Count(),
		Question:        s.questions[s.current],
		CanRetreat:      s.current > 0 && s.state != StateFinished,
		NextLabel:       "Next",
		ProgressText:    fmt.Sprintf("%d / %d", s.current+1, s.Count()),
		ProgressPercent: percent(s.current+1, s.Count()),
		StartedAt:       s.startedAt,
	}
	if s.current == s.lastIndex() {
		snap.NextLabel = "Finish"
	}
	if opt, ok := s.answers[s.current]; ok {
		snap.Selected = &opt
	}
	return snap, nil
}

type ReviewRow struct {
	Number        int    `json:"number"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation,omitempty"`
}

func (s *Session) ReviewRows() ([]ReviewRow, error) {
	if err := s.started(); err != nil {
		return nil, err
	}

	rows := make([]ReviewRow, 0, s.Count())
	for i, q := range s.questions {
		row := ReviewRow{
			Number:      i + 1,
			Question:    q.Text,
			UserAnswer:  NotAnswered,
			Correct:     s.isCorrect(i),
			Explanation: q.Explanation,
		}
		if opt, ok := s.answers[i]; ok {
			row.Answered = true
			row.UserAnswer = q.Options[opt]
		}
		if !row.Correct {
			row.CorrectAnswer = q.Answer
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type Result struct {
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Incorrect  int    `json:"incorrect"`
	Percentage int    `json:"percentage"`
	TimeSpent  string `json:"time_spent"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
}

func (s *Session) Result() (Result, error) {
	correct, err := s.Score()
	if err != nil {
		return Result{}, err
	}

	pct := percent(correct, s.Count())
	title, subtitle := grade(pct)
	return Result{
		Total:      s.Count(),
		Correct:    correct,
		Incorrect:  s.Count() - correct,
		Percentage: pct,
		TimeSpent:  s.ElapsedLabel(),
		Title:      title,
		Subtitle:   subtitle,
	}, nil
}

func grade(pct int) (string, string) {
	switch {
	case pct >= 80:
		return "Excellent Work!", "Outstanding performance!"
	case pct >= 60:
		return "Good Job!", "Well done! Keep practicing."
	default:
		return "Keep Practicing!", "Review the material and try again."
	}
}
