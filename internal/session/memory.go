// internal/session/memory.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-process session store. It round-trips snapshots
// through JSON so it behaves like the Redis store; used in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

// Load retrieves the session snapshot, or a fresh state when absent
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	s.mu.Lock()
	data, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok {
		return NewState(), nil
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	state.normalize()
	return &state, nil
}

// Save stores the session snapshot
func (s *MemoryStore) Save(ctx context.Context, sessionID string, state *State) error {
	state.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	s.sessions[sessionID] = data
	s.mu.Unlock()
	return nil
}

// Delete discards a session snapshot
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}
