package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

// statusFor maps trainer errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrRoundEvaluated):
		return http.StatusConflict
	case errors.Is(err, game.ErrNoActiveRound):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidAnswer), errors.Is(err, game.ErrInvalidMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
