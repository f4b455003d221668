package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoActiveSession   = errors.New("no active quiz session")
	ErrWeekRequired      = errors.New("weekly mode requires a week")
	ErrMissingPlayer     = errors.New("player id required")
	ErrSessionInProgress = errors.New("quiz session still in progress")
)

// DefaultIdleTimeout is how long an untouched session is kept.
const DefaultIdleTimeout = 2 * time.Hour

type SessionService interface {
	Start(ctx context.Context, playerID string, mode quiz.Mode, week *int) (quiz.Snapshot, error)
	Snapshot(ctx context.Context, playerID string) (quiz.Snapshot, error)
	Answer(ctx context.Context, playerID string, option int) (quiz.Feedback, quiz.Snapshot, error)
	Advance(ctx context.Context, playerID string) (quiz.Snapshot, error)
	Retreat(ctx context.Context, playerID string) (quiz.Snapshot, error)
	Result(ctx context.Context, playerID string) (quiz.Result, error)
	Review(ctx context.Context, playerID string) ([]quiz.ReviewRow, error)
	Discard(ctx context.Context, playerID string) error
	Active() int
}

type entry struct {
	mu      sync.Mutex
	session *quiz.Session
	// guarded by sessionService.mu
	lastSeen time.Time
}

type ServiceOption func(*sessionService)

// WithIdleTimeout sets how long a session may go untouched before it is
// dropped. Zero or negative keeps sessions until discarded.
func WithIdleTimeout(d time.Duration) ServiceOption {
	return func(s *sessionService) {
		s.idleTimeout = d
	}
}

// sessionService keeps one live session per player. The map lock only guards
// membership and idle times; each entry has its own lock so players never
// block each other. Sessions live in process memory only.
type sessionService struct {
	bank        *quiz.Bank
	now         func() time.Time
	idleTimeout time.Duration

	mu      sync.Mutex
	players map[string]*entry
}

func NewService(bank *quiz.Bank, now func() time.Time, opts ...ServiceOption) SessionService {
	if now == nil {
		now = time.Now
	}
	s := &sessionService{
		bank:        bank,
		now:         now,
		idleTimeout: DefaultIdleTimeout,
		players:     make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) expired(e *entry, now time.Time) bool {
	return s.idleTimeout > 0 && now.Sub(e.lastSeen) > s.idleTimeout
}

// sweep drops idle sessions. Callers hold s.mu.
func (s *sessionService) sweep(now time.Time) int {
	dropped := 0
	for id, e := range s.players {
		if s.expired(e, now) {
			delete(s.players, id)
			dropped++
		}
	}
	return dropped
}

func (s *sessionService) lookup(playerID string) (*entry, error) {
	if playerID == "" {
		return nil, ErrMissingPlayer
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.players[playerID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.players, playerID)
		return nil, ErrNoActiveSession
	}
	e.lastSeen = now
	return e, nil
}

// with runs fn while holding the player's entry lock.
func (s *sessionService) with(playerID string, fn func(*quiz.Session) error) error {
	e, err := s.lookup(playerID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

func (s *sessionService) Start(ctx context.Context, playerID string, mode quiz.Mode, week *int) (quiz.Snapshot, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"player_id": playerID,
		"mode":      mode,
	})

	if playerID == "" {
		return quiz.Snapshot{}, ErrMissingPlayer
	}

	weekIndex := quiz.NoWeek
	if mode == quiz.ModeWeekly {
		if week == nil {
			log.Warn("Weekly session requested without a week")
			return quiz.Snapshot{}, ErrWeekRequired
		}
		weekIndex = *week
	}

	sess, err := quiz.Start(s.bank, mode, weekIndex, quiz.WithClock(s.now))
	if err != nil {
		log.WithError(err).Warn("Could not start quiz session")
		return quiz.Snapshot{}, err
	}

	now := s.now()
	s.mu.Lock()
	dropped := s.sweep(now)
	s.players[playerID] = &entry{session: sess, lastSeen: now}
	s.mu.Unlock()

	if dropped > 0 {
		log.WithField("dropped", dropped).Info("Idle quiz sessions dropped")
	}
	log.WithField("questions", sess.Count()).Info("Quiz session started")
	return sess.Snapshot()
}

func (s *sessionService) Snapshot(ctx context.Context, playerID string) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := s.with(playerID, func(sess *quiz.Session) error {
		var err error
		snap, err = sess.Snapshot()
		return err
	})
	return snap, err
}

func (s *sessionService) Answer(ctx context.Context, playerID string, option int) (quiz.Feedback, quiz.Snapshot, error) {
	var (
		fb   quiz.Feedback
		snap quiz.Snapshot
	)
	err := s.with(playerID, func(sess *quiz.Session) error {
		var err error
		if fb, err = sess.RecordAnswer(option); err != nil {
			return err
		}
		snap, err = sess.Snapshot()
		return err
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("player_id", playerID).Debug("Answer rejected")
	}
	return fb, snap, err
}

func (s *sessionService) Advance(ctx context.Context, playerID string) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := s.with(playerID, func(sess *quiz.Session) error {
		if err := sess.Advance(); err != nil {
			return err
		}
		var err error
		snap, err = sess.Snapshot()
		if err == nil && snap.State == quiz.StateFinished {
			config.WithContext(ctx).WithField("player_id", playerID).Info("Quiz session finished")
		}
		return err
	})
	return snap, err
}

func (s *sessionService) Retreat(ctx context.Context, playerID string) (quiz.Snapshot, error) {
	var snap quiz.Snapshot
	err := s.with(playerID, func(sess *quiz.Session) error {
		if err := sess.Retreat(); err != nil {
			return err
		}
		var err error
		snap, err = sess.Snapshot()
		return err
	})
	return snap, err
}

func (s *sessionService) Result(ctx context.Context, playerID string) (quiz.Result, error) {
	var res quiz.Result
	err := s.with(playerID, func(sess *quiz.Session) error {
		if sess.State() != quiz.StateFinished {
			return ErrSessionInProgress
		}
		var err error
		res, err = sess.Result()
		return err
	})
	return res, err
}

func (s *sessionService) Review(ctx context.Context, playerID string) ([]quiz.ReviewRow, error) {
	var rows []quiz.ReviewRow
	err := s.with(playerID, func(sess *quiz.Session) error {
		if sess.State() != quiz.StateFinished {
			return ErrSessionInProgress
		}
		var err error
		rows, err = sess.ReviewRows()
		return err
	})
	return rows, err
}

func (s *sessionService) Discard(ctx context.Context, playerID string) error {
	if playerID == "" {
		return ErrMissingPlayer
	}
	s.mu.Lock()
	e, ok := s.players[playerID]
	live := ok && !s.expired(e, s.now())
	delete(s.players, playerID)
	s.mu.Unlock()

	if !live {
		return ErrNoActiveSession
	}
	config.WithContext(ctx).WithField("player_id", playerID).Info("Quiz session discarded")
	return nil
}

func (s *sessionService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(s.now())
	return len(s.players)
}
