package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestLimiter_FixedWindow(t *testing.T) {
	clk := &clock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	limiter := NewLimiter(NewMemoryStore(), clk.Now, logger.NewNop())
	ctx := context.Background()
	window := 15 * time.Minute

	for i := 1; i <= 5; i++ {
		res := limiter.Check(ctx, "connect:acme", 5, window)
		assert.True(t, res.Allowed, "attempt %d", i)
		assert.Equal(t, 5-i, res.Remaining)
		assert.Equal(t, clk.now.Add(window), res.ResetAt)
	}

	res := limiter.Check(ctx, "connect:acme", 5, window)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	other := limiter.Check(ctx, "connect:other", 5, window)
	assert.True(t, other.Allowed, "keys are independent")

	clk.Advance(window)
	res = limiter.Check(ctx, "connect:acme", 5, window)
	assert.True(t, res.Allowed, "window reset")
	assert.Equal(t, 4, res.Remaining)
}

func TestMemoryStore_Sweep(t *testing.T) {
	clk := &clock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	limiter := NewLimiter(store, clk.Now, logger.NewNop())
	ctx := context.Background()

	limiter.Check(ctx, "short", 1, time.Minute)
	limiter.Check(ctx, "long", 1, time.Hour)
	require.Equal(t, 2, store.Len())

	clk.Advance(2 * time.Minute)
	limiter.Sweep(ctx)

	assert.Equal(t, 1, store.Len())
	removed, err := store.Sweep(ctx, clk.now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestLimiter_FailsOpenWhenStoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	limiter := NewLimiter(NewRedisStore(rdb), func() time.Time { return now }, logger.NewNop())

	for i := 0; i < 3; i++ {
		res := limiter.Check(context.Background(), "connect:acme", 1, time.Minute)
		assert.True(t, res.Allowed)
		assert.Equal(t, now.Add(time.Minute), res.ResetAt)
	}
}
