package get_slot_orders

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type SlotsService interface {
	GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error)
	GetOrderRefs(ctx context.Context, slotID int64) ([]*domain.OrderRef, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
