package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/models"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// VerifyAdminToken checks if the provided token matches the stored hash
func VerifyAdminToken(hashedToken, plainToken string) bool {
	if hashedToken == "" || plainToken == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(plainToken))
	return err == nil
}

// HashAdminToken returns the bcrypt hash to put in ADMIN_TOKEN_HASH.
func HashAdminToken(plainToken string) (string, error) {
	if plainToken == "" {
		return "", fmt.Errorf("admin token is empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainToken), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hashed), nil
}

// LogAdminAction records an admin action in the audit log
func LogAdminAction(ctx context.Context, db *sqlx.DB, ip, route, action string, details map[string]interface{}, success bool) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		log.Printf("[ADMIN] Failed to marshal audit details: %v", err)
		detailsJSON = []byte("{}")
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO admin_audit (ip, route, action, details, success, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, ip, route, action, detailsJSON, success)

	if err != nil {
		log.Printf("[ADMIN] Failed to log admin action: %v", err)
	}

	return err
}

// GetAdminAuditLogs retrieves recent admin audit logs with pagination
func GetAdminAuditLogs(ctx context.Context, db *sqlx.DB, limit, offset int) ([]models.AdminAudit, error) {
	var logs []models.AdminAudit
	err := db.SelectContext(ctx, &logs, `
		SELECT id, ip, route, action, details, success, created_at
		FROM admin_audit
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	return logs, err
}

// GetTrainerSession loads the logged row for a session UUID.
func GetTrainerSession(ctx context.Context, db *sqlx.DB, sessionUUID string) (*models.TrainerSession, error) {
	var s models.TrainerSession
	err := db.GetContext(ctx, &s, `SELECT id, session_uuid, mode, created_at FROM trainer_sessions WHERE session_uuid=$1`, sessionUUID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListAttempts returns the logged attempts of one session in round order.
func ListAttempts(ctx context.Context, db *sqlx.DB, sessionUUID string, limit int) ([]models.ShotAttempt, error) {
	var attempts []models.ShotAttempt
	err := db.SelectContext(ctx, &attempts, `
		SELECT a.id, a.session_id, a.round_number, a.ball, a.level, a.target_ei, a.target_direction,
		       a.answer_ei, a.answer_direction, a.outcome, a.score_after, a.created_at
		FROM shot_attempts a
		JOIN trainer_sessions s ON s.id = a.session_id
		WHERE s.session_uuid = $1
		ORDER BY a.round_number
		LIMIT $2
	`, sessionUUID, limit)
	return attempts, err
}

// AccuracyByEI aggregates hit rates per target EI across all sessions.
func AccuracyByEI(ctx context.Context, db *sqlx.DB) ([]models.AccuracyRow, error) {
	var rows []models.AccuracyRow
	err := db.SelectContext(ctx, &rows, `
		SELECT target_ei, COUNT(*) AS attempts,
		       COUNT(*) FILTER (WHERE outcome = 'CORRECT') AS hits
		FROM shot_attempts
		GROUP BY target_ei
		ORDER BY target_ei
	`)
	return rows, err
}
