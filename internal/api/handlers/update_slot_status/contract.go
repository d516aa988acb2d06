package update_slot_status

import (
	"context"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

type SlotsService interface {
	SetStatus(ctx context.Context, slotID int64, status domain.SlotStatus) (*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
