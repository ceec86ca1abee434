package models

import (
	"encoding/json"
	"time"
)

// TrainerSession is one row of trainer_sessions.
type TrainerSession struct {
	ID          int       `db:"id" json:"id"`
	SessionUUID string    `db:"session_uuid" json:"session_uuid"`
	Mode        string    `db:"mode" json:"mode"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ShotAttempt is one answered round.
type ShotAttempt struct {
	ID              int       `db:"id" json:"id"`
	SessionID       int       `db:"session_id" json:"session_id"`
	RoundNumber     int       `db:"round_number" json:"round_number"`
	Ball            int       `db:"ball" json:"ball"`
	Level           int       `db:"level" json:"level"`
	TargetEI        float64   `db:"target_ei" json:"target_ei"`
	TargetDirection string    `db:"target_direction" json:"target_direction"`
	AnswerEI        float64   `db:"answer_ei" json:"answer_ei"`
	AnswerDirection string    `db:"answer_direction" json:"answer_direction"`
	Outcome         string    `db:"outcome" json:"outcome"`
	ScoreAfter      int       `db:"score_after" json:"score_after"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AccuracyRow aggregates attempts per target EI.
type AccuracyRow struct {
	TargetEI float64 `db:"target_ei" json:"target_ei"`
	Attempts int     `db:"attempts" json:"attempts"`
	Hits     int     `db:"hits" json:"hits"`
}

// AdminAudit represents an admin action log entry
type AdminAudit struct {
	ID        int             `db:"id" json:"id"`
	IP        string          `db:"ip" json:"ip"`
	Route     string          `db:"route" json:"route"`
	Action    string          `db:"action" json:"action"`
	Details   json.RawMessage `db:"details" json:"details"`
	Success   bool            `db:"success" json:"success"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
