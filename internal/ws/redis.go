package ws

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
	"github.com/redis/go-redis/v9"
)

// StartEventSubscriber relays trainer events published on Redis by any
// server instance to the clients attached to this one. It returns when ctx is
// cancelled.
func StartEventSubscriber(ctx context.Context, rdb *redis.Client, hub *Hub) error {
	if rdb == nil {
		log.Println("[WS] Redis client not set; event subscriber not started")
		return nil
	}

	pubsub := rdb.Subscribe(ctx, game.EventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	log.Printf("[WS] %s subscriber started", game.EventsChannel)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[WS] %s subscriber stopping", game.EventsChannel)
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			relayEvent(hub, []byte(msg.Payload))
		}
	}
}

func relayEvent(hub *Hub, payload []byte) {
	var ev game.TrainerEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("[WS] invalid event payload: %v", err)
		return
	}
	if ev.SessionID == "" {
		log.Printf("[WS] event %s without session id dropped", ev.Type)
		return
	}
	if hub.RoomSize(ev.SessionID) == 0 {
		return
	}
	log.Printf("[WS] relaying %s to session %s", ev.Type, ev.SessionID)
	hub.BroadcastToSession(ev.SessionID, eventMessage(ev))
}
