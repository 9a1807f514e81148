package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
	"github.com/ManuelReschke/QuestBoard/internal/pkg/env"
)

const isolatedCacheTestRedisDB = 13

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", env.GetEnv("CACHE_HOST", "localhost"), env.GetEnv("CACHE_PORT", "6379")),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       isolatedCacheTestRedisDB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		t.Skipf("Skipping Redis-dependent test: no reachable Redis endpoint (%v)", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCheckInKey(t *testing.T) {
	assert.Equal(t, "checkins:quest:4:user:9", checkInKey(4, 9))
}

func TestCheckInCacheRoundTrip(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	c := NewCheckInCache(client, time.Minute)
	t.Cleanup(func() { _ = client.Del(ctx, checkInKey(1, 2), checkInVersionKey(1, 2)).Err() })

	_, ok, err := c.Dates(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	days := []calendar.Date{
		calendar.MustDate(2024, time.January, 2),
		calendar.MustDate(2024, time.January, 4),
	}
	version, err := c.Version(ctx, 1, 2)
	require.NoError(t, err)
	stored, err := c.Store(ctx, 1, 2, version, days)
	require.NoError(t, err)
	assert.True(t, stored)

	got, ok, err := c.Dates(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.ElementsMatch(t, days, got)

	ttl, err := client.TTL(ctx, checkInKey(1, 2)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Invalidate(ctx, 1, 2))
	_, ok, err = c.Dates(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	next, err := c.Version(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, version+1, next)
}

func TestCheckInCacheRejectsStaleStore(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	c := NewCheckInCache(client, time.Minute)
	t.Cleanup(func() { _ = client.Del(ctx, checkInKey(3, 4), checkInVersionKey(3, 4)).Err() })

	version, err := c.Version(ctx, 3, 4)
	require.NoError(t, err)

	// a check-in lands between the database read and the cache write
	require.NoError(t, c.Invalidate(ctx, 3, 4))

	stale := []calendar.Date{calendar.MustDate(2024, time.January, 2)}
	stored, err := c.Store(ctx, 3, 4, version, stale)
	require.NoError(t, err)
	assert.False(t, stored)

	_, ok, err := c.Dates(ctx, 3, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := c.Version(ctx, 3, 4)
	require.NoError(t, err)
	stored, err = c.Store(ctx, 3, 4, current, stale)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestCheckInCacheCorruptMember(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	c := NewCheckInCache(client, time.Minute)

	t.Cleanup(func() { _ = client.Del(ctx, checkInKey(5, 6)).Err() })
	require.NoError(t, client.SAdd(ctx, checkInKey(5, 6), "not-a-date").Err())

	_, ok, err := c.Dates(ctx, 5, 6)
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err := client.Exists(ctx, checkInKey(5, 6)).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
