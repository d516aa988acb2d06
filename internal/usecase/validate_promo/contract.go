package validate_promo

import (
	"context"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	CountRedemptionsByCustomer(ctx context.Context, code, email string) (int, error)
}

// PromoCache интерфейс кеша промокодов (read-through поверх репозитория)
type PromoCache interface {
	Get(ctx context.Context, code string) (*domain.PromoCode, error)
	Set(ctx context.Context, promo *domain.PromoCode) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
