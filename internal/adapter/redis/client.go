// Package redis holds the Redis-backed stores: browsing-session state and the
// per-user recently-viewed list.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/crm-backend/internal/config"
)

// NewClient creates a Redis client from RedisConfig and pings it for
// fail-fast validation.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// Pinger adapts a client to the Ping(ctx) error shape used by health probes.
type Pinger struct {
	client *goredis.Client
}

// NewPinger wraps client for readiness checks.
func NewPinger(client *goredis.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping reports whether Redis answers.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
