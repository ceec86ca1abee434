package game

import (
	"context"
	"log"
	"time"
)

// StartExpiryWorker periodically drops sessions idle past the manager's TTL.
// It returns when ctx is cancelled.
func StartExpiryWorker(ctx context.Context, m *Manager, interval time.Duration) {
	if m == nil {
		log.Println("[EXPIRY] Manager missing; expiry worker not started")
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}

	log.Printf("[EXPIRY] Expiry worker started (interval=%s ttl=%s)", interval, m.TTL())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[EXPIRY] Expiry worker stopping")
			return
		case now := <-ticker.C:
			if expired := m.ExpireIdle(ctx, now); len(expired) > 0 {
				log.Printf("[EXPIRY] Expired %d idle session(s)", len(expired))
			}
		}
	}
}
