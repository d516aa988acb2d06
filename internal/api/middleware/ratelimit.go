package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/PZA-SlotService/internal/api/handlers"
	"github.com/m04kA/PZA-SlotService/pkg/ratelimit"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// RateLimit ограничивает частоту запросов по идентичности клиента (IP).
// Лимитер внедряется снаружи; при недоступном Redis запросы пропускаются,
// лимитирование не должно ронять доступность сервиса.
func RateLimit(limiter *ratelimit.Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || !limiter.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			key := clientIP(r)

			allowed, remaining, resetAt, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("RateLimit: limiter unavailable, passing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				logger.Warn("RateLimit: client %s exceeded limit", key)
				handlers.RespondError(w, http.StatusTooManyRequests, "слишком много запросов, попробуйте позже")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP определяет IP клиента с учётом прокси
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
