package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

// Client -> server payloads
type NewRoundData struct {
	ForceReset bool `json:"force_reset"`
}

// HandleWebSocket attaches a connection to an existing session. The session
// token is checked by the route's auth middleware.
func HandleWebSocket(m *game.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		snap, err := m.Snapshot(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] Upgrade error: %v", err)
			return
		}

		client := &Client{
			conn:      conn,
			sessionID: sessionID,
			send:      make(chan []byte, 64),
		}
		if !hub.attach(client) {
			conn.Close()
			return
		}

		client.sendJSON(stateMessage(snap))

		go client.writePump()
		go client.readPump(m, hub)
	}
}

// readPump reads trainer commands until the connection drops.
func (c *Client) readPump(m *game.Manager, hub *Hub) {
	defer func() {
		hub.detach(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessage)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Unexpected close for session %s: %v", c.sessionID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("Invalid message")
			continue
		}

		c.handleMessage(context.Background(), m, hub, msg)
	}
}

// handleMessage dispatches one client command.
func (c *Client) handleMessage(ctx context.Context, m *game.Manager, hub *Hub, msg WSMessage) {
	switch msg.Type {
	case "new_round":
		var data NewRoundData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError("Invalid round data")
				return
			}
		}
		snap, err := m.NextRound(ctx, c.sessionID, data.ForceReset)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		hub.BroadcastToSession(c.sessionID, roundMessage(snap))

	case "submit_answer":
		var data game.AnswerInput
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("Invalid answer data")
			return
		}
		answer, err := data.ToAnswer()
		if err != nil {
			c.sendError(err.Error())
			return
		}
		verdict, snap, err := m.SubmitAnswer(ctx, c.sessionID, answer)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		hub.BroadcastToSession(c.sessionID, map[string]interface{}{
			"type":    "answer_result",
			"verdict": verdict,
			"message": verdict.Message(),
			"session": snap,
		})

	case "reset":
		snap, err := m.Reset(ctx, c.sessionID)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		hub.BroadcastToSession(c.sessionID, roundMessage(snap))

	case "get_state":
		snap, err := m.Snapshot(ctx, c.sessionID)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		c.sendJSON(stateMessage(snap))

	default:
		c.sendError("Unknown message type")
	}
}

func roundMessage(snap game.SessionSnapshot) map[string]interface{} {
	return map[string]interface{}{
		"type":    "round_started",
		"round":   snap.Target,
		"session": snap,
	}
}

func stateMessage(snap game.SessionSnapshot) map[string]interface{} {
	return map[string]interface{}{
		"type":    "session_state",
		"session": snap,
	}
}

func eventMessage(ev game.TrainerEvent) map[string]interface{} {
	return map[string]interface{}{
		"type":  "trainer_event",
		"event": ev,
	}
}
