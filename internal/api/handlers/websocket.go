package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/ws"
)

// HandleSessionWebSocket upgrades an authenticated session request
func HandleSessionWebSocket(m *game.Manager, hub *ws.Hub) gin.HandlerFunc {
	return ws.HandleWebSocket(m, hub)
}
