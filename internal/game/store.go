package game

import (
	"context"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . SessionStore,AttemptLog,EventPublisher

// SessionStore keeps live session state outside the process so a restarted
// server can pick sessions back up until they expire.
type SessionStore interface {
	Save(ctx context.Context, snap SessionSnapshot, ttl time.Duration) error
	Load(ctx context.Context, id string) (SessionSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// AttemptLog records answered rounds for offline analysis.
type AttemptLog interface {
	CreateSession(ctx context.Context, snap SessionSnapshot) (int, error)
	RecordAttempt(ctx context.Context, a Attempt) error
}

// EventPublisher fans trainer events out to other server instances.
type EventPublisher interface {
	Publish(ctx context.Context, ev TrainerEvent) error
}

// Attempt is one answered round.
type Attempt struct {
	DBSessionID     int       `json:"db_session_id"`
	SessionID       string    `json:"session_id"`
	RoundNumber     int       `json:"round_number"`
	Ball            int       `json:"ball"`
	Level           int       `json:"level"`
	TargetEI        float64   `json:"target_ei"`
	TargetDirection Direction `json:"target_direction"`
	AnswerEI        float64   `json:"answer_ei"`
	AnswerDirection Direction `json:"answer_direction"`
	Outcome         Outcome   `json:"outcome"`
	ScoreAfter      int       `json:"score_after"`
	CreatedAt       time.Time `json:"created_at"`
}

// EventType names a trainer event.
type EventType string

const (
	EventLevelUp   EventType = "level_up"
	EventRackClear EventType = "rack_clear"
	EventReset     EventType = "reset"
)

// TrainerEvent is published on rack and level changes.
type TrainerEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Ball      int       `json:"ball"`
	Level     int       `json:"level"`
	Score     int       `json:"score"`
	At        time.Time `json:"at"`
}
