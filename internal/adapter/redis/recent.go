package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const recentKeyPrefix = "recent:"

// RecentStore keeps each user's most recently viewed account ids, newest
// first, capped at limit entries.
type RecentStore struct {
	client *goredis.Client
	limit  int
}

// NewRecentStore creates a RecentStore.
func NewRecentStore(client *goredis.Client, limit int) *RecentStore {
	return &RecentStore{client: client, limit: limit}
}

// Touch moves accountID to the front of the user's list.
func (s *RecentStore) Touch(ctx context.Context, userID, accountID uuid.UUID) error {
	key := recentKeyPrefix + userID.String()
	member := accountID.String()

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, member)
		pipe.LPush(ctx, key, member)
		pipe.LTrim(ctx, key, 0, int64(s.limit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("touch recent: %w", err)
	}

	return nil
}

// Remove drops accountID from the user's list.
func (s *RecentStore) Remove(ctx context.Context, userID, accountID uuid.UUID) error {
	if err := s.client.LRem(ctx, recentKeyPrefix+userID.String(), 0, accountID.String()).Err(); err != nil {
		return fmt.Errorf("remove recent: %w", err)
	}
	return nil
}

// List returns the user's recently viewed account ids, newest first.
// Entries that are not valid ids are skipped.
func (s *RecentStore) List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	members, err := s.client.LRange(ctx, recentKeyPrefix+userID.String(), 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
