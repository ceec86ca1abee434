package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/api/handlers"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/config"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/middleware"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/ws"
	"github.com/jmoiron/sqlx"
)

// SetupRoutes configures all API routes. db may be nil when no attempt log is
// configured.
func SetupRoutes(router *gin.Engine, m *game.Manager, hub *ws.Hub, db *sqlx.DB, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	engine := m.Engine()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/config", handlers.GetConfig(engine))
		v1.GET("/curriculum", handlers.GetCurriculum(engine))

		v1.POST("/sessions", handlers.CreateSession(m, cfg))

		session := v1.Group("/sessions/:id", handlers.SessionAuthMiddleware(cfg, m.TTL()))
		{
			session.GET("", handlers.GetSession(m))
			session.POST("/rounds", handlers.NextRound(m))
			session.POST("/answers", handlers.SubmitAnswer(m))
			session.POST("/reset", handlers.ResetSession(m))
			session.GET("/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleSessionWebSocket(m, hub))
		}

		adminGroup := v1.Group("/admin", handlers.AdminTokenMiddleware(cfg, db))
		{
			adminGroup.GET("/sessions", handlers.GetActiveSessions(m))
			adminGroup.GET("/sessions/:id/attempts", handlers.GetSessionAttempts(db))
			adminGroup.GET("/accuracy", handlers.GetAccuracy(db))
			adminGroup.GET("/audit", handlers.GetAdminAuditLogs(db))
		}
	}
}
