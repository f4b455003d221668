package session

import (
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	util "github.com/saulo-duarte/chronos-quiz/internal/utils"
)

type StartRequest struct {
	Mode quiz.Mode `json:"mode"`
	Week *int      `json:"week,omitempty"`
}

type AnswerRequest struct {
	Option *int `json:"option"`
}

// QuestionDTO hides the correct answer from players.
type QuestionDTO struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

type SnapshotDTO struct {
	State           quiz.State         `json:"state"`
	Mode            quiz.Mode          `json:"mode"`
	ModeLabel       string             `json:"mode_label"`
	ScopeLabel      string             `json:"scope_label"`
	Week            *int               `json:"week,omitempty"`
	Index           int                `json:"index"`
	Total           int                `json:"total"`
	Question        QuestionDTO        `json:"question"`
	Selected        *int               `json:"selected,omitempty"`
	CanRetreat      bool               `json:"can_retreat"`
	NextLabel       string             `json:"next_label"`
	ProgressText    string             `json:"progress_text"`
	ProgressPercent int                `json:"progress_percent"`
	StartedAt       util.LocalDateTime `json:"started_at"`
}

type AnswerResponse struct {
	Feedback quiz.Feedback `json:"feedback"`
	Session  SnapshotDTO   `json:"session"`
}

func ToSnapshotDTO(s quiz.Snapshot) SnapshotDTO {
	dto := SnapshotDTO{
		State:           s.State,
		Mode:            s.Mode,
		ModeLabel:       s.ModeLabel,
		ScopeLabel:      s.ScopeLabel,
		Index:           s.Index,
		Total:           s.Total,
		Question:        QuestionDTO{Text: s.Question.Text, Options: s.Question.Options},
		Selected:        s.Selected,
		CanRetreat:      s.CanRetreat,
		NextLabel:       s.NextLabel,
		ProgressText:    s.ProgressText,
		ProgressPercent: s.ProgressPercent,
		StartedAt:       util.NewLocalDateTime(s.StartedAt),
	}
	if s.Week != quiz.NoWeek {
		week := s.Week
		dto.Week = &week
	}
	return dto
}
