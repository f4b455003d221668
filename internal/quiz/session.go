package quiz

import (
	"errors"
	"fmt"
	"math"
	"time"

	util "github.com/saulo-duarte/chronos-quiz/internal/utils"
)

var (
	ErrInvalidWeekIndex   = errors.New("invalid week index")
	ErrInvalidOptionIndex = errors.New("invalid option index")
	ErrEmptyQuestionSet   = errors.New("empty question set")
	ErrSessionNotStarted  = errors.New("session not started")
	ErrSessionFinished    = errors.New("session already finished")
	ErrNoQuestionBank     = errors.New("question bank not loaded")
	ErrInvalidMode        = errors.New("invalid quiz mode")
)

// NoWeek is passed to Start for full-series sessions.
const NoWeek = -1

// Session is one attempt at a question set. It is owned by a single caller
// and is not safe for concurrent use.
type Session struct {
	mode      Mode
	week      int
	weekName  string
	questions []Question
	current   int
	answers   map[int]int
	startedAt time.Time
	endedAt   time.Time
	state     State
	now       func() time.Time
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Start builds a new in-progress session. Weekly sessions require an explicit
// week index; the active set is capped at the first WeekLength questions.
func Start(bank *Bank, mode Mode, week int, opts ...Option) (*Session, error) {
	if bank == nil {
		return nil, ErrNoQuestionBank
	}

	s := &Session{
		mode:    mode,
		week:    NoWeek,
		answers: make(map[int]int),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch mode {
	case ModeFull:
		s.questions = bank.FullSeries
	case ModeWeekly:
		w, err := bank.Week(week)
		if err != nil {
			return nil, err
		}
		s.week = week
		s.weekName = w.Name
		s.questions = w.Questions
		if len(s.questions) > WeekLength {
			s.questions = s.questions[:WeekLength]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if len(s.questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	s.startedAt = s.now()
	s.state = StateInProgress
	return s, nil
}

func (s *Session) started() error {
	if s == nil || s.state == "" || s.state == StateNotStarted {
		return ErrSessionNotStarted
	}
	return nil
}

func (s *Session) State() State {
	if s == nil || s.state == "" {
		return StateNotStarted
	}
	return s.state
}

// Mode is empty on a nil session.
func (s *Session) Mode() Mode {
	if s == nil {
		return ""
	}
	return s.mode
}

// Week returns the zero-based week index, or NoWeek for full-series and nil
// sessions.
func (s *Session) Week() int {
	if s == nil {
		return NoWeek
	}
	return s.week
}

func (s *Session) Index() int {
	if s == nil {
		return 0
	}
	return s.current
}

func (s *Session) StartedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.startedAt
}

// FinishedAt is zero until the session finishes.
func (s *Session) FinishedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.endedAt
}

// Count is the number of questions scored and reviewed in this session.
func (s *Session) Count() int {
	if s == nil {
		return 0
	}
	return len(s.questions)
}

func (s *Session) lastIndex() int { return len(s.questions) - 1 }

func (s *Session) Current() (Question, error) {
	if err := s.started(); err != nil {
		return Question{}, err
	}
	return s.questions[s.current], nil
}

// Answer returns the option recorded for index i, if any.
func (s *Session) Answer(i int) (int, bool) {
	if s == nil {
		return 0, false
	}
	opt, ok := s.answers[i]
	return opt, ok
}

// RecordAnswer stores option against the current question, replacing any
// previous choice for it.
func (s *Session) RecordAnswer(option int) (Feedback, error) {
	if err := s.started(); err != nil {
		return Feedback{}, err
	}
	if s.state == StateFinished {
		return Feedback{}, ErrSessionFinished
	}

	q := s.questions[s.current]
	if option < 0 || option >= len(q.Options) {
		return Feedback{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOptionIndex, option, len(q.Options))
	}

	s.answers[s.current] = option
	return newFeedback(q, option), nil
}

// Advance moves to the next question, or finishes the session on the last
// one. Advancing a finished session does nothing.
func (s *Session) Advance() error {
	if err := s.started(); err != nil {
		return err
	}
	if s.state == StateFinished {
		return nil
	}

	if s.current < s.lastIndex() {
		s.current++
		return nil
	}
	s.state = StateFinished
	s.endedAt = s.now()
	return nil
}

func (s *Session) Retreat() error {
	if err := s.started(); err != nil {
		return err
	}
	if s.state == StateFinished {
		return ErrSessionFinished
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}

func (s *Session) isCorrect(i int) bool {
	opt, ok := s.answers[i]
	return ok && opt == s.questions[i].CorrectIndex()
}

func (s *Session) Score() (int, error) {
	if err := s.started(); err != nil {
		return 0, err
	}
	correct := 0
	for i := range s.questions {
		if s.isCorrect(i) {
			correct++
		}
	}
	return correct, nil
}

func (s *Session) Percentage() (int, error) {
	correct, err := s.Score()
	if err != nil {
		return 0, err
	}
	return percent(correct, s.Count()), nil
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ElapsedLabel is the time from start to finish, or to now while the session
// is still in progress.
func (s *Session) ElapsedLabel() string {
	if s.started() != nil {
		return util.FormatClock(0)
	}
	end := s.endedAt
	if end.IsZero() {
		end = s.now()
	}
	return util.FormatClock(end.Sub(s.startedAt))
}
