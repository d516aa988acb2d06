package promos

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.PromoCode, error)
	Update(ctx context.Context, code string, promo *domain.PromoCode) (*domain.PromoCode, error)
	Delete(ctx context.Context, code string) error
	IncrementUsage(ctx context.Context, code string) error
	CreateRedemption(ctx context.Context, red *domain.PromoRedemption) (*domain.PromoRedemption, error)
}

// PromoCache интерфейс кеша промокодов.
// Реализация может отсутствовать (nil-safe обёртка в сервисе).
type PromoCache interface {
	Invalidate(ctx context.Context, code string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
