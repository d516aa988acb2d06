package reserve_slot

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Reserve(ctx context.Context, slotID int64, pizzaCount int) (*domain.TimeSlot, error)
	AddOrderRef(ctx context.Context, ref *domain.OrderRef) (*domain.OrderRef, error)
}

// TransactionManager интерфейс менеджера транзакций.
// Резервирование выполняется в serializable-транзакции: условный UPDATE
// вместимости и привязка заказа должны быть видны атомарно.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
