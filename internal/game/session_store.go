package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// EventsChannel is the Redis pub/sub channel trainer events go out on.
const EventsChannel = "trainer_events"

func sessionKey(id string) string {
	return "trainer:session:" + id
}

// RedisStore keeps session snapshots in Redis and publishes trainer events.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Save(ctx context.Context, snap SessionSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", snap.ID, err)
	}
	return r.rdb.SetEx(ctx, sessionKey(snap.ID), data, ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context, id string) (SessionSnapshot, error) {
	var snap SessionSnapshot
	data, err := r.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return snap, ErrSessionNotFound
		}
		return snap, fmt.Errorf("load session %s: %w", id, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode session %s: %w", id, err)
	}
	return snap, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}

func (r *RedisStore) Publish(ctx context.Context, ev TrainerEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	n, err := r.rdb.Publish(ctx, EventsChannel, b).Result()
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	log.Printf("[REDIS] published %s for session %s (subscribers=%d)", ev.Type, ev.SessionID, n)
	return nil
}
