package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the live sessions and keeps the optional stores in step.
type Manager struct {
	engine   *Engine
	store    SessionStore
	attempts AttemptLog
	events   EventPublisher
	ttl      time.Duration
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates a manager. store, attempts and events may be nil.
func NewManager(engine *Engine, store SessionStore, attempts AttemptLog, events EventPublisher, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{
		engine:   engine,
		store:    store,
		attempts: attempts,
		events:   events,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Engine() *Engine { return m.engine }

func (m *Manager) TTL() time.Duration { return m.ttl }

// CreateSession starts a new session and deals its first round.
func (m *Manager) CreateSession(ctx context.Context) (SessionSnapshot, error) {
	s := NewSession(uuid.NewString(), m.engine.Mode().Name)
	s.StartRound(m.engine, false)

	if m.attempts != nil {
		id, err := m.attempts.CreateSession(ctx, s.Snapshot())
		if err != nil {
			log.Printf("[DB] Failed to record session %s: %v", s.ID, err)
		} else {
			s.setDBSessionID(id)
		}
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	snap := s.Snapshot()
	m.persist(ctx, snap)
	log.Printf("[TRAINER] Session %s created (mode=%s)", s.ID, s.Mode)
	return snap, nil
}

// GetSession returns the live session, falling back to the store.
func (m *Manager) GetSession(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}
	if m.store == nil {
		return nil, ErrSessionNotFound
	}

	snap, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s = SessionFromSnapshot(snap)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		return existing, nil
	}
	m.sessions[id] = s
	log.Printf("[TRAINER] Session %s restored from store", id)
	return s, nil
}

// Snapshot returns the current state of a session.
func (m *Manager) Snapshot(ctx context.Context, id string) (SessionSnapshot, error) {
	s, err := m.GetSession(ctx, id)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return s.Snapshot(), nil
}

// NextRound commits the pending transition and deals the next target.
func (m *Manager) NextRound(ctx context.Context, id string, forceReset bool) (SessionSnapshot, error) {
	s, err := m.GetSession(ctx, id)
	if err != nil {
		return SessionSnapshot{}, err
	}
	s.StartRound(m.engine, forceReset)
	snap := s.Snapshot()
	m.persist(ctx, snap)
	if forceReset {
		m.publish(ctx, EventReset, snap)
	}
	return snap, nil
}

// Reset returns the session to ball 1, level 1 with a fresh round.
func (m *Manager) Reset(ctx context.Context, id string) (SessionSnapshot, error) {
	return m.NextRound(ctx, id, true)
}

// SubmitAnswer scores an answer against the session's current round.
func (m *Manager) SubmitAnswer(ctx context.Context, id string, a Answer) (Verdict, SessionSnapshot, error) {
	s, err := m.GetSession(ctx, id)
	if err != nil {
		return Verdict{}, SessionSnapshot{}, err
	}

	before := s.Snapshot()
	v, err := s.SubmitAnswer(m.engine, a)
	if err != nil {
		return Verdict{}, before, err
	}
	snap := s.Snapshot()
	m.persist(ctx, snap)

	if m.attempts != nil {
		att := Attempt{
			DBSessionID:     snap.DBSessionID,
			SessionID:       snap.ID,
			RoundNumber:     snap.RoundNumber,
			Ball:            before.Progress.Ball,
			Level:           before.Progress.Level,
			TargetEI:        v.TargetEI,
			TargetDirection: v.TargetDirection,
			AnswerEI:        v.AnswerEI,
			AnswerDirection: v.AnswerDirection,
			Outcome:         v.Outcome,
			ScoreAfter:      snap.Progress.Score,
			CreatedAt:       snap.LastActivity,
		}
		if err := m.attempts.RecordAttempt(ctx, att); err != nil {
			log.Printf("[DB] Failed to record attempt for session %s: %v", id, err)
		}
	}

	if v.RackClear {
		m.publish(ctx, EventRackClear, snap)
	}
	if v.LevelUp {
		m.publish(ctx, EventLevelUp, snap)
	}
	return v, snap, nil
}

// ActiveSessions lists the in-memory sessions.
func (m *Manager) ActiveSessions() []SessionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SessionSnapshot, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Snapshot())
	}
	return out
}

// ExpireIdle drops sessions idle for longer than the TTL and returns their IDs.
func (m *Manager) ExpireIdle(ctx context.Context, now time.Time) []string {
	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.IdleSince(now) >= m.ttl {
			s.markExpired()
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		if m.store != nil {
			if err := m.store.Delete(ctx, id); err != nil {
				log.Printf("[REDIS] Failed to delete expired session %s: %v", id, err)
			}
		}
		log.Printf("[EXPIRY] Session %s expired", id)
	}
	return expired
}

func (m *Manager) persist(ctx context.Context, snap SessionSnapshot) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(ctx, snap, m.ttl); err != nil {
		log.Printf("[REDIS] Failed to save session %s: %v", snap.ID, err)
	}
}

func (m *Manager) publish(ctx context.Context, t EventType, snap SessionSnapshot) {
	if m.events == nil {
		return
	}
	ev := TrainerEvent{
		Type:      t,
		SessionID: snap.ID,
		Ball:      snap.Progress.Ball,
		Level:     snap.Progress.Level,
		Score:     snap.Progress.Score,
		At:        time.Now(),
	}
	// On level up the new level is still pending until the next round.
	if snap.Progress.PendingLevel != nil {
		ev.Level = *snap.Progress.PendingLevel
	}
	if err := m.events.Publish(ctx, ev); err != nil {
		log.Printf("[REDIS] Failed to publish %s for session %s: %v", t, snap.ID, err)
	}
}
