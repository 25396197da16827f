// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session snapshots. Loading an unknown session yields a
// fresh State, never an error.
type Store interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps session snapshots in Redis with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("storefront:session:%s", sessionID)
}

// Load retrieves the session snapshot, or a fresh state when the session
// does not exist or has expired.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return NewState(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	state.normalize()
	return &state, nil
}

// Save stores the session snapshot, refreshing its TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, state *State) error {
	state.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err()
}

// Delete discards a session snapshot
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
