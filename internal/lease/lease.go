// Package lease provides a redis-backed lock so that only one notifier
// process handles a given tick.
package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "notifier:lease:"

// RedisLease implements contract.TickLease with SET NX.
type RedisLease struct {
	client redis.UniversalClient
	owner  string
}

// New wraps an existing client. owner is stored as the lease value for
// debugging and is not interpreted.
func New(client redis.UniversalClient, owner string) *RedisLease {
	return &RedisLease{client: client, owner: owner}
}

// NewFromURL connects using a redis:// URL and verifies the connection.
func NewFromURL(ctx context.Context, url, owner string) (*RedisLease, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return New(client, owner), nil
}

// Acquire claims key for ttl. It reports false when another holder has it.
func (l *RedisLease) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease %s: %w", key, err)
	}
	return ok, nil
}

func (l *RedisLease) Close() error {
	return l.client.Close()
}
