package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/admin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/config"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/jmoiron/sqlx"
)

const adminTokenHeader = "X-Admin-Token"

// AdminTokenMiddleware checks the X-Admin-Token header against ADMIN_TOKEN_HASH.
// Admin routes are closed when no hash is configured. Every attempt is audited
// when a database is available.
func AdminTokenMiddleware(cfg *config.Config, db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(adminTokenHeader)
		ok := admin.VerifyAdminToken(cfg.AdminTokenHash, token)

		if db != nil {
			details := map[string]interface{}{"method": c.Request.Method}
			admin.LogAdminAction(c.Request.Context(), db, c.ClientIP(), c.FullPath(), "access", details, ok)
		}

		if !ok {
			log.Printf("[ADMIN] Rejected admin request from %s to %s", c.ClientIP(), c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// GetActiveSessions lists the sessions held in memory, most recent first
func GetActiveSessions(m *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := m.ActiveSessions()
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].LastActivity.After(sessions[j].LastActivity)
		})
		c.JSON(http.StatusOK, gin.H{"sessions": sessions, "total": len(sessions)})
	}
}

// GetSessionAttempts returns the logged attempts of one session
func GetSessionAttempts(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attempt log not configured"})
			return
		}
		limit := queryInt(c, "limit", 500, 5000)

		attempts, err := admin.ListAttempts(c.Request.Context(), db, c.Param("id"), limit)
		if err != nil {
			log.Printf("[ADMIN] Failed to fetch attempts for %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attempts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"attempts": attempts, "total": len(attempts)})
	}
}

// GetAccuracy returns hit rates per target EI across all logged attempts
func GetAccuracy(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attempt log not configured"})
			return
		}
		rows, err := admin.AccuracyByEI(c.Request.Context(), db)
		if err != nil {
			log.Printf("[ADMIN] Failed to aggregate accuracy: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate accuracy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"accuracy": rows})
	}
}
