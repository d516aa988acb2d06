// Package promo кеш промокодов в Redis.
// Снижает нагрузку на БД при валидации кодов на витрине: промокоды читаются
// на каждую попытку применения, а меняются редко. Инвалидация — при любом
// административном изменении кода.
package promo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// ErrCacheMiss возвращается, когда промокода нет в кеше
var ErrCacheMiss = errors.New("promo.cache: cache miss")

// Cache кеш промокодов
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache создает кеш промокодов с заданным TTL
func NewCache(redisClient *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Get возвращает промокод из кеша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, code string) (*domain.PromoCode, error) {
	data, err := c.redis.Get(ctx, c.key(code)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("promo.cache: get failed: %w", err)
	}

	var promo domain.PromoCode
	if err := json.Unmarshal(data, &promo); err != nil {
		// Повреждённая запись равносильна промаху
		return nil, ErrCacheMiss
	}

	return &promo, nil
}

// Set сохраняет промокод в кеш
func (c *Cache) Set(ctx context.Context, promo *domain.PromoCode) error {
	data, err := json.Marshal(promo)
	if err != nil {
		return fmt.Errorf("promo.cache: marshal failed: %w", err)
	}

	if err := c.redis.Set(ctx, c.key(promo.Code), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("promo.cache: set failed: %w", err)
	}

	return nil
}

// Invalidate удаляет промокод из кеша
func (c *Cache) Invalidate(ctx context.Context, code string) error {
	if err := c.redis.Del(ctx, c.key(code)).Err(); err != nil {
		return fmt.Errorf("promo.cache: del failed: %w", err)
	}
	return nil
}

func (c *Cache) key(code string) string {
	return "promo:" + domain.NormalizeCode(code)
}
