package slots

import (
	"context"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByDateRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error)
	SetStatus(ctx context.Context, slotID int64, status domain.SlotStatus) (*domain.TimeSlot, error)
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
	GetOrderRefs(ctx context.Context, slotID int64) ([]*domain.OrderRef, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
