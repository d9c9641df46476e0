package lease

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLease(t *testing.T, owner string) (*RedisLease, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, owner), mr
}

func TestRedisLease_Acquire(t *testing.T) {
	ctx := context.Background()
	first, mr := newTestLease(t, "node-a")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	second := New(client, "node-b")

	ok, err := first.Acquire(ctx, "poll:2026-03-02T08:00", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx, "poll:2026-03-02T08:00", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "bucket already claimed by another process")

	ok, err = second.Acquire(ctx, "poll:2026-03-02T08:01", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "a different bucket is free")

	value, err := mr.Get(keyPrefix + "poll:2026-03-02T08:00")
	require.NoError(t, err)
	assert.Equal(t, "node-a", value)

	mr.FastForward(2 * time.Minute)
	ok, err = second.Acquire(ctx, "poll:2026-03-02T08:00", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "lease expires after its ttl")
}

func TestRedisLease_Unavailable(t *testing.T) {
	lease, mr := newTestLease(t, "node-a")
	mr.Close()

	ok, err := lease.Acquire(context.Background(), "poll:x", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	lease, err := NewFromURL(context.Background(), "redis://"+mr.Addr()+"/0", "node-a")
	require.NoError(t, err)
	defer lease.Close()

	_, err = NewFromURL(context.Background(), "not a url", "node-a")
	assert.Error(t, err)
}
