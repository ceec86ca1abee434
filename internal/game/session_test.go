package game

import (
	"errors"
	"testing"
	"time"
)

func TestSessionAnswerBeforeRound(t *testing.T) {
	e := newTestEngine(t, "8-ball")
	s := NewSession("s1", e.Mode().Name)
	if _, err := s.SubmitAnswer(e, Answer{EI: 1, Direction: DirectionLeft}); !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("got %v, want ErrNoActiveRound", err)
	}
}

func TestSessionRoundLifecycle(t *testing.T) {
	e := newTestEngine(t, "8-ball")
	s := NewSession("s1", e.Mode().Name)

	target := s.StartRound(e, false)
	if s.RoundNumber != 1 || s.Status != StatusAwaitingAnswer {
		t.Fatalf("after start: round %d status %s", s.RoundNumber, s.Status)
	}

	v, err := s.SubmitAnswer(e, Answer{EI: target.EI, Direction: target.Direction})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Errorf("exact answer scored %s", v.Outcome)
	}

	snap := s.Snapshot()
	if snap.Status != StatusEvaluated || snap.Attempts != 1 || snap.Hits != 1 {
		t.Errorf("snapshot: %+v", snap)
	}
	if snap.LastVerdict == nil || snap.LastVerdict.Outcome != OutcomeCorrect {
		t.Errorf("last verdict: %+v", snap.LastVerdict)
	}

	if _, err := s.SubmitAnswer(e, Answer{EI: target.EI, Direction: target.Direction}); !errors.Is(err, ErrRoundEvaluated) {
		t.Errorf("second answer: got %v, want ErrRoundEvaluated", err)
	}

	s.Reset(e)
	snap = s.Snapshot()
	if snap.Progress.Ball != 1 || snap.Progress.Score != 0 || snap.LastVerdict != nil || snap.RoundNumber != 2 {
		t.Errorf("after reset: %+v", snap)
	}
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	e := newTestEngine(t, "9-ball")
	s := NewSession("s2", e.Mode().Name)
	s.StartRound(e, false)

	restored := SessionFromSnapshot(s.Snapshot())
	if restored.ID != "s2" || restored.Target != s.Target || restored.Progress.Ball != 1 {
		t.Errorf("restored: %+v", restored.Snapshot())
	}
	if d := restored.IdleSince(restored.LastActivity.Add(time.Minute)); d != time.Minute {
		t.Errorf("idle: got %s", d)
	}
}
