package game

import (
	"errors"
	"log"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one player's run through the trainer.
type Session struct {
	ID           string
	Mode         string
	Progress     Progress
	Target       TargetShot
	LastVerdict  *Verdict
	Status       SessionStatus
	RoundNumber  int
	Attempts     int
	Hits         int
	CreatedAt    time.Time
	LastActivity time.Time
	DBSessionID  int
	mu           sync.RWMutex
}

// SessionSnapshot is the serializable view of a session, used for Redis,
// HTTP responses and websocket pushes.
type SessionSnapshot struct {
	ID           string        `json:"id"`
	Mode         string        `json:"mode"`
	Progress     Progress      `json:"progress"`
	Target       TargetShot    `json:"target"`
	LastVerdict  *Verdict      `json:"last_verdict,omitempty"`
	Status       SessionStatus `json:"status"`
	RoundNumber  int           `json:"round_number"`
	Attempts     int           `json:"attempts"`
	Hits         int           `json:"hits"`
	CreatedAt    time.Time     `json:"created_at"`
	LastActivity time.Time     `json:"last_activity"`
	DBSessionID  int           `json:"db_session_id,omitempty"`
}

// NewSession creates a session at ball 1, level 1 with no round dealt.
func NewSession(id, mode string) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Mode:         mode,
		Progress:     NewProgress(),
		Status:       StatusAwaitingAnswer,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// SessionFromSnapshot rebuilds a session loaded from the store.
func SessionFromSnapshot(s SessionSnapshot) *Session {
	return &Session{
		ID:           s.ID,
		Mode:         s.Mode,
		Progress:     s.Progress,
		Target:       s.Target,
		LastVerdict:  s.LastVerdict,
		Status:       s.Status,
		RoundNumber:  s.RoundNumber,
		Attempts:     s.Attempts,
		Hits:         s.Hits,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		DBSessionID:  s.DBSessionID,
	}
}

// StartRound commits any pending transition and deals the next target.
func (s *Session) StartRound(e *Engine, forceReset bool) TargetShot {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, p := e.NewRound(s.Progress, forceReset)
	s.Progress = p
	s.Target = target
	s.LastVerdict = nil
	s.Status = StatusAwaitingAnswer
	s.RoundNumber++
	s.LastActivity = time.Now()

	log.Printf("[TRAINER] Session %s round #%d: ball=%d level=%d ei=%.1f dir=%s",
		s.ID, s.RoundNumber, p.Ball, p.Level, target.EI, target.Direction)
	return target
}

// Reset puts the session back on ball 1, level 1, score 0 and deals a round.
func (s *Session) Reset(e *Engine) TargetShot {
	return s.StartRound(e, true)
}

// SubmitAnswer scores the player's answer for the current round.
func (s *Session) SubmitAnswer(e *Engine, a Answer) (Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Target.IsZero() {
		return Verdict{}, ErrNoActiveRound
	}

	v, p, err := e.SubmitAnswer(s.Progress, s.Target, a)
	if err != nil {
		return Verdict{}, err
	}

	s.Progress = p
	s.LastVerdict = &v
	s.Status = StatusEvaluated
	s.Attempts++
	if v.Correct {
		s.Hits++
	}
	s.LastActivity = time.Now()

	log.Printf("[TRAINER] Session %s answer: target=%.1f %s answer=%.1f %s outcome=%s score=%d next_ball=%d next_level=%d",
		s.ID, v.TargetEI, v.TargetDirection, v.AnswerEI, v.AnswerDirection, v.Outcome, p.Score, v.NextBall, v.NextLevel)
	return v, nil
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() SessionSnapshot {
	var verdict *Verdict
	if s.LastVerdict != nil {
		v := *s.LastVerdict
		verdict = &v
	}
	return SessionSnapshot{
		ID:           s.ID,
		Mode:         s.Mode,
		Progress:     s.Progress,
		Target:       s.Target,
		LastVerdict:  verdict,
		Status:       s.Status,
		RoundNumber:  s.RoundNumber,
		Attempts:     s.Attempts,
		Hits:         s.Hits,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		DBSessionID:  s.DBSessionID,
	}
}

// IdleSince reports how long the session has been untouched.
func (s *Session) IdleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.LastActivity)
}

func (s *Session) setDBSessionID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DBSessionID = id
}

func (s *Session) markExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = StatusExpired
}
