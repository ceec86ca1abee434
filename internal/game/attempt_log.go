package game

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLAttemptLog writes sessions and attempts to Postgres.
type SQLAttemptLog struct {
	db *sqlx.DB
}

func NewSQLAttemptLog(db *sqlx.DB) *SQLAttemptLog {
	return &SQLAttemptLog{db: db}
}

func (l *SQLAttemptLog) CreateSession(ctx context.Context, snap SessionSnapshot) (int, error) {
	var id int
	err := l.db.QueryRowxContext(ctx,
		`INSERT INTO trainer_sessions (session_uuid, mode, created_at) VALUES ($1, $2, $3) RETURNING id`,
		snap.ID, snap.Mode, snap.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert trainer_session: %w", err)
	}
	return id, nil
}

func (l *SQLAttemptLog) RecordAttempt(ctx context.Context, a Attempt) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO shot_attempts (session_id, round_number, ball, level, target_ei, target_direction, answer_ei, answer_direction, outcome, score_after, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.DBSessionID, a.RoundNumber, a.Ball, a.Level,
		a.TargetEI, a.TargetDirection.String(), a.AnswerEI, a.AnswerDirection.String(),
		string(a.Outcome), a.ScoreAfter, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shot_attempt: %w", err)
	}
	return nil
}
