package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/config"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

// CreateSession starts a trainer session and returns its first round and token
func CreateSession(m *game.Manager, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := m.CreateSession(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		token, err := IssueSessionToken(cfg.JWTSecret, snap.ID, m.TTL())
		if err != nil {
			log.Printf("Failed to sign token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"token":   token,
			"session": snap,
			"round":   snap.Target,
		})
	}
}

// GetSession returns the current session state
func GetSession(m *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := m.Snapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": snap, "token": c.GetString("session_token")})
	}
}

type nextRoundRequest struct {
	ForceReset bool `json:"force_reset"`
}

// NextRound commits the pending transition and deals the next target
func NextRound(m *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req nextRoundRequest
		// an empty body means a plain next round
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}

		snap, err := m.NextRound(c.Request.Context(), c.Param("id"), req.ForceReset)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session": snap,
			"round":   snap.Target,
			"token":   c.GetString("session_token"),
		})
	}
}

// ResetSession puts the session back on ball 1, level 1
func ResetSession(m *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := m.Reset(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session": snap,
			"round":   snap.Target,
			"token":   c.GetString("session_token"),
		})
	}
}

// SubmitAnswer scores an answer for the current round
func SubmitAnswer(m *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req game.AnswerInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answer body"})
			return
		}
		answer, err := req.ToAnswer()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		verdict, snap, err := m.SubmitAnswer(c.Request.Context(), c.Param("id"), answer)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"verdict": verdict,
			"message": verdict.Message(),
			"session": snap,
			"token":   c.GetString("session_token"),
		})
	}
}

func formatEI(ei float64) string {
	return strconv.FormatFloat(ei, 'f', -1, 64)
}
