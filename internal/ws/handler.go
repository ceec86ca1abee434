package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	maxMessage = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are checked by middleware.WebSocketCORSCheck
	},
}

// Client is one websocket connection attached to a trainer session.
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
	ready     chan struct{}
}

// Hub keeps a room of clients per session. A session may be open in several
// tabs; every tab sees the same rounds and verdicts.
type Hub struct {
	rooms      map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run serves registrations until ctx is cancelled, then closes every
// connection. Read pumps still running see the closed connection and exit.
func (h *Hub) Run(ctx context.Context) error {
	log.Println("[WS] Hub started")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, room := range h.rooms {
				for client := range room {
					if client.conn != nil {
						client.conn.Close()
					}
				}
				delete(h.rooms, id)
			}
			h.mu.Unlock()
			log.Println("[WS] Hub stopping")
			return nil

		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.sessionID]
			if !ok {
				room = make(map[*Client]struct{})
				h.rooms[client.sessionID] = room
			}
			room[client] = struct{}{}
			size := len(room)
			h.mu.Unlock()
			close(client.ready)
			log.Printf("[WS] Client connected to session %s (room_size=%d)", client.sessionID, size)

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.sessionID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.sessionID)
					}
				}
			}
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected from session %s", client.sessionID)
		}
	}
}

// attach registers a client and waits until it is in its room. It returns
// false if the hub has stopped.
func (h *Hub) attach(c *Client) bool {
	c.ready = make(chan struct{})
	select {
	case h.register <- c:
		<-c.ready
		return true
	case <-h.done:
		return false
	}
}

// detach unregisters a client; it is a no-op once the hub has stopped.
func (h *Hub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// BroadcastToSession sends a message to every client of a session.
func (h *Hub) BroadcastToSession(sessionID string, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WS] Error marshaling message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[sessionID] {
		select {
		case client.send <- data:
		default:
			log.Printf("[WS] Send buffer full for session %s, dropping message", sessionID)
		}
	}
}

// RoomSize reports how many clients are attached to a session.
func (h *Hub) RoomSize(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionID])
}

// Publish delivers a trainer event straight to the session's clients. It is
// the event sink used when Redis is not configured.
func (h *Hub) Publish(_ context.Context, ev game.TrainerEvent) error {
	h.BroadcastToSession(ev.SessionID, eventMessage(ev))
	return nil
}

// Message types
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[WS] Write error for session %s: %v", c.sessionID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] Ping error for session %s: %v", c.sessionID, err)
				return
			}
		}
	}
}

// sendJSON queues a message for this client only.
func (c *Client) sendJSON(message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WS] Error marshaling message: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("[WS] Send buffer full for session %s, dropping message", c.sessionID)
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(message string) {
	c.sendJSON(map[string]interface{}{
		"type":    "error",
		"message": message,
	})
}
