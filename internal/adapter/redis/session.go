package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps domain.SessionState as JSON under session:<id>.
// Every Save refreshes the TTL, so idle sessions expire after ttl.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Load returns the state stored for id, or an empty state when none exists.
func (s *SessionStore) Load(ctx context.Context, id string) (*domain.SessionState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return &domain.SessionState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &state, nil
}

// Save stores state under id and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, id string, state *domain.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

