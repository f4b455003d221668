package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/session"
)

func testBank() *quiz.Bank {
	week := make([]quiz.Question, 12)
	for i := range week {
		week[i] = quiz.Question{Text: fmt.Sprintf("W%d", i+1), Options: []string{"a", "b"}, Answer: "a"}
	}
	return &quiz.Bank{
		FullSeries: []quiz.Question{
			{Text: "Q1", Options: []string{"x", "y"}, Answer: "x", Explanation: "x it is"},
			{Text: "Q2", Options: []string{"x", "y"}, Answer: "y"},
			{Text: "Q3", Options: []string{"x", "y"}, Answer: "x"},
		},
		Weeks: []quiz.Week{{Name: "Week 1", Questions: week}},
	}
}

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func intPtr(v int) *int { return &v }

func TestServiceStart(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testBank(), fixedClock())

	t.Run("Full", func(t *testing.T) {
		snap, err := svc.Start(ctx, "p1", quiz.ModeFull, nil)
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if snap.Total != 3 || snap.Index != 0 || snap.ProgressText != "1 / 3" {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("WeeklyCapped", func(t *testing.T) {
		snap, err := svc.Start(ctx, "p2", quiz.ModeWeekly, intPtr(0))
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if snap.Total != quiz.WeekLength {
			t.Errorf("expected %d questions, got %d", quiz.WeekLength, snap.Total)
		}
	})

	t.Run("WeeklyWithoutWeek", func(t *testing.T) {
		if _, err := svc.Start(ctx, "p3", quiz.ModeWeekly, nil); !errors.Is(err, session.ErrWeekRequired) {
			t.Errorf("expected ErrWeekRequired, got %v", err)
		}
	})

	t.Run("WeeklyBadWeek", func(t *testing.T) {
		if _, err := svc.Start(ctx, "p3", quiz.ModeWeekly, intPtr(5)); !errors.Is(err, quiz.ErrInvalidWeekIndex) {
			t.Errorf("expected ErrInvalidWeekIndex, got %v", err)
		}
	})

	t.Run("MissingPlayer", func(t *testing.T) {
		if _, err := svc.Start(ctx, "", quiz.ModeFull, nil); !errors.Is(err, session.ErrMissingPlayer) {
			t.Errorf("expected ErrMissingPlayer, got %v", err)
		}
	})

	t.Run("NoBank", func(t *testing.T) {
		empty := session.NewService(nil, nil)
		if _, err := empty.Start(ctx, "p", quiz.ModeFull, nil); !errors.Is(err, quiz.ErrNoQuestionBank) {
			t.Errorf("expected ErrNoQuestionBank, got %v", err)
		}
	})

	if svc.Active() != 2 {
		t.Errorf("expected 2 live sessions, got %d", svc.Active())
	}
}

func TestServiceFlow(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testBank(), fixedClock())

	if _, err := svc.Start(ctx, "p1", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	fb, snap, err := svc.Answer(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !fb.Correct || fb.Message != "Correct!" || fb.Explanation != "x it is" {
		t.Errorf("unexpected feedback: %+v", fb)
	}
	if snap.Selected == nil || *snap.Selected != 0 {
		t.Errorf("selection not reflected in snapshot: %+v", snap.Selected)
	}

	if _, _, err := svc.Answer(ctx, "p1", 7); !errors.Is(err, quiz.ErrInvalidOptionIndex) {
		t.Errorf("expected ErrInvalidOptionIndex, got %v", err)
	}

	snap, err = svc.Advance(ctx, "p1")
	if err != nil || snap.Index != 1 || !snap.CanRetreat {
		t.Fatalf("Advance: %+v, %v", snap, err)
	}
	snap, err = svc.Retreat(ctx, "p1")
	if err != nil || snap.Index != 0 {
		t.Fatalf("Retreat: %+v, %v", snap, err)
	}

	for i := 0; i < 3; i++ {
		if snap, err = svc.Advance(ctx, "p1"); err != nil {
			t.Fatalf("Advance %d failed: %v", i, err)
		}
	}
	if snap.State != quiz.StateFinished {
		t.Fatalf("expected finished, got %s", snap.State)
	}

	if _, err := svc.Retreat(ctx, "p1"); !errors.Is(err, quiz.ErrSessionFinished) {
		t.Errorf("expected ErrSessionFinished, got %v", err)
	}

	res, err := svc.Result(ctx, "p1")
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if res.Correct != 1 || res.Total != 3 || res.Percentage != 33 || res.TimeSpent != "0:00" {
		t.Errorf("unexpected result: %+v", res)
	}

	rows, err := svc.Review(ctx, "p1")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if len(rows) != 3 || rows[1].UserAnswer != quiz.NotAnswered || rows[1].CorrectAnswer != "y" {
		t.Errorf("unexpected review rows: %+v", rows)
	}

	if err := svc.Discard(ctx, "p1"); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if _, err := svc.Snapshot(ctx, "p1"); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession after discard, got %v", err)
	}
	if err := svc.Discard(ctx, "p1"); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("expected ErrNoActiveSession on second discard, got %v", err)
	}
}

func TestServiceRestartReplacesSession(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testBank(), fixedClock())

	if _, err := svc.Start(ctx, "p1", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, _, err := svc.Answer(ctx, "p1", 0); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if _, err := svc.Advance(ctx, "p1"); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	snap, err := svc.Start(ctx, "p1", quiz.ModeFull, nil)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if snap.Index != 0 || snap.Selected != nil {
		t.Errorf("restart should begin from a clean slate: %+v", snap)
	}
	if svc.Active() != 1 {
		t.Errorf("expected 1 live session, got %d", svc.Active())
	}
}

func TestServiceConcurrentPlayers(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testBank(), nil)

	var wg sync.WaitGroup
	for p := 0; p < 20; p++ {
		wg.Add(1)
		go func(player string) {
			defer wg.Done()
			if _, err := svc.Start(ctx, player, quiz.ModeWeekly, intPtr(0)); err != nil {
				t.Errorf("%s: Start failed: %v", player, err)
				return
			}
			for i := 0; i < quiz.WeekLength; i++ {
				if _, _, err := svc.Answer(ctx, player, 0); err != nil {
					t.Errorf("%s: Answer failed: %v", player, err)
					return
				}
				if _, err := svc.Advance(ctx, player); err != nil {
					t.Errorf("%s: Advance failed: %v", player, err)
					return
				}
			}
			res, err := svc.Result(ctx, player)
			if err != nil || res.Percentage != 100 {
				t.Errorf("%s: unexpected result %+v, %v", player, res, err)
			}
		}(fmt.Sprintf("player-%d", p))
	}
	wg.Wait()

	if svc.Active() != 20 {
		t.Errorf("expected 20 live sessions, got %d", svc.Active())
	}
}

func TestServiceResultAndReviewNeedFinish(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(testBank(), fixedClock())

	if _, err := svc.Start(ctx, "p1", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if rows, err := svc.Review(ctx, "p1"); !errors.Is(err, session.ErrSessionInProgress) || rows != nil {
		t.Errorf("review mid-quiz should be refused, got %v rows, err %v", len(rows), err)
	}
	if _, err := svc.Result(ctx, "p1"); !errors.Is(err, session.ErrSessionInProgress) {
		t.Errorf("result mid-quiz should be refused, got %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Advance(ctx, "p1"); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	if _, err := svc.Review(ctx, "p1"); err != nil {
		t.Errorf("review after finish: %v", err)
	}
	if _, err := svc.Result(ctx, "p1"); err != nil {
		t.Errorf("result after finish: %v", err)
	}
}

func TestServiceDropsIdleSessions(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := t0
	clock := func() time.Time { return now }

	svc := session.NewService(testBank(), clock, session.WithIdleTimeout(time.Hour))

	if _, err := svc.Start(ctx, "p1", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start p1: %v", err)
	}
	now = t0.Add(30 * time.Minute)
	if _, err := svc.Snapshot(ctx, "p1"); err != nil {
		t.Fatalf("Snapshot p1: %v", err)
	}

	now = t0.Add(80 * time.Minute)
	if _, err := svc.Start(ctx, "p2", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start p2: %v", err)
	}
	if svc.Active() != 2 {
		t.Fatalf("recently touched session should survive, got %d live", svc.Active())
	}

	now = t0.Add(2 * time.Hour)
	if _, _, err := svc.Answer(ctx, "p2", 0); err != nil {
		t.Fatalf("Answer p2: %v", err)
	}

	now = t0.Add(145 * time.Minute)
	if _, err := svc.Start(ctx, "p3", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start p3: %v", err)
	}
	if svc.Active() != 2 {
		t.Errorf("expected p2 and p3 to remain, got %d live", svc.Active())
	}
	if _, err := svc.Snapshot(ctx, "p1"); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("idle session should be gone, got %v", err)
	}
	if snap, err := svc.Snapshot(ctx, "p2"); err != nil || snap.Selected == nil {
		t.Errorf("active session should keep its answers: %+v, %v", snap, err)
	}

	now = t0.Add(10 * time.Hour)
	if _, err := svc.Snapshot(ctx, "p3"); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("expired session should not be served, got %v", err)
	}
	if err := svc.Discard(ctx, "p2"); !errors.Is(err, session.ErrNoActiveSession) {
		t.Errorf("discarding an expired session should report it missing, got %v", err)
	}
	if svc.Active() != 0 {
		t.Errorf("expected no live sessions, got %d", svc.Active())
	}
}

func TestServiceWithoutIdleTimeout(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := t0
	svc := session.NewService(testBank(), func() time.Time { return now }, session.WithIdleTimeout(0))

	if _, err := svc.Start(ctx, "p1", quiz.ModeFull, nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	now = t0.Add(24 * 30 * time.Hour)
	if _, err := svc.Snapshot(ctx, "p1"); err != nil {
		t.Errorf("session should be kept without a timeout: %v", err)
	}
}
