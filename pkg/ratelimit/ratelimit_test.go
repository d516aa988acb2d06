package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit, windowSeconds int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, limit, windowSeconds, "test"), mr
}

func TestLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("requests within limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 3, 60)

		for i := 0; i < 3; i++ {
			allowed, remaining, _, err := limiter.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Equal(t, int64(2-i), remaining)
		}
	})

	t.Run("limit exceeded", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 2, 60)

		for i := 0; i < 2; i++ {
			allowed, _, _, err := limiter.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			require.True(t, allowed)
		}

		allowed, remaining, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
	})

	t.Run("keys are counted independently", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, 60)

		allowed, _, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, _, _, err = limiter.Allow(ctx, "5.6.7.8")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("window reset restores the limit", func(t *testing.T) {
		limiter, mr := newTestLimiter(t, 1, 30)

		allowed, _, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, _, _, err = limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.False(t, allowed)

		mr.FastForward(31 * time.Second)

		allowed, remaining, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, remaining)
	})
}

func TestLimiter_Disabled(t *testing.T) {
	ctx := context.Background()

	t.Run("nil client", func(t *testing.T) {
		limiter := New(nil, 10, 60, "test")
		assert.False(t, limiter.Enabled())

		allowed, _, _, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("invalid limit", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })

		assert.False(t, New(client, 0, 60, "test").Enabled())
		assert.False(t, New(client, 10, 0, "test").Enabled())
	})
}
