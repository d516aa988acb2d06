package promo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCache(client, ttl), mr
}

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, time.Minute)

	t.Run("miss on empty cache", func(t *testing.T) {
		_, err := cache.Get(ctx, "PIZZA20")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		promo := &domain.PromoCode{
			Code:     "PIZZA20",
			Type:     domain.PromoPercentage,
			Value:    20,
			IsActive: true,
		}
		require.NoError(t, cache.Set(ctx, promo))

		got, err := cache.Get(ctx, "PIZZA20")
		require.NoError(t, err)
		assert.Equal(t, "PIZZA20", got.Code)
		assert.Equal(t, domain.PromoPercentage, got.Type)
		assert.Equal(t, 20.0, got.Value)
	})

	t.Run("key is normalized", func(t *testing.T) {
		// Чтение по ненормализованному коду попадает в ту же запись
		got, err := cache.Get(ctx, "  pizza20 ")
		require.NoError(t, err)
		assert.Equal(t, "PIZZA20", got.Code)
	})
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set("promo:BROKEN", "not-json"))

	_, err := cache.Get(ctx, "BROKEN")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, time.Minute)

	require.NoError(t, cache.Set(ctx, &domain.PromoCode{Code: "GONE", Type: domain.PromoFixed, Value: 5}))
	require.NoError(t, cache.Invalidate(ctx, "gone"))

	_, err := cache.Get(ctx, "GONE")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, 10*time.Second)

	require.NoError(t, cache.Set(ctx, &domain.PromoCode{Code: "SHORT", Type: domain.PromoFixed, Value: 5}))

	mr.FastForward(11 * time.Second)

	_, err := cache.Get(ctx, "SHORT")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
