package release_slot

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Release(ctx context.Context, slotID int64, pizzaCount int) (*domain.TimeSlot, error)
	RemoveOrderRef(ctx context.Context, slotID int64, orderRef string) (*domain.OrderRef, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
