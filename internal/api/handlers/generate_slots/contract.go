package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/service/slots"
)

type SlotsService interface {
	GenerateRange(ctx context.Context, startDate time.Time, numberOfDays int) (*slots.GenerationReport, error)
	RegenerateDate(ctx context.Context, date time.Time) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
