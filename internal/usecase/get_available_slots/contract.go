package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByDateRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error)
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
}

// SlotGenerator интерфейс генерации слотов на дату.
// Реализуется сервисом слотов; используется для генерации по требованию,
// когда покупатель запрашивает дату, на которую слоты ещё не создавались.
type SlotGenerator interface {
	GenerateForDate(ctx context.Context, date time.Time) (int, error)
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
