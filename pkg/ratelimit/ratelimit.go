// Package ratelimit ограничение количества запросов в фиксированном окне
// на ключ клиента (IP или email). Состояние хранится в Redis, поэтому лимит
// общий для всех инстансов сервиса, а не локальная map процесса.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter лимитер запросов с фиксированным окном
type Limiter struct {
	redis   *redis.Client
	enabled bool
	limit   int64
	window  time.Duration
	prefix  string
}

// New создает лимитер. Если redisClient == nil или limit/window некорректны,
// лимитер отключен и пропускает все запросы.
func New(redisClient *redis.Client, limit int, windowSeconds int, prefix string) *Limiter {
	if redisClient == nil || limit <= 0 || windowSeconds <= 0 {
		return &Limiter{enabled: false}
	}

	if prefix == "" {
		prefix = "ratelimit"
	}

	return &Limiter{
		redis:   redisClient,
		enabled: true,
		limit:   int64(limit),
		window:  time.Duration(windowSeconds) * time.Second,
		prefix:  prefix,
	}
}

// Allow регистрирует запрос по ключу и возвращает признак разрешения,
// остаток лимита и время сброса окна.
func (l *Limiter) Allow(ctx context.Context, key string) (allowed bool, remaining int64, resetAt time.Time, err error) {
	if !l.enabled {
		return true, l.limit, time.Now().Add(l.window), nil
	}

	now := time.Now()
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("ratelimit: incr failed: %w", err)
	}

	// TTL выставляется только на первом запросе окна
	if count == 1 {
		if err := l.redis.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, time.Time{}, fmt.Errorf("ratelimit: expire failed: %w", err)
		}
	}

	ttl, err := l.redis.TTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}

	remaining = l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= l.limit, remaining, now.Add(ttl), nil
}

// Enabled возвращает true, если лимитер активен
func (l *Limiter) Enabled() bool {
	return l.enabled
}
