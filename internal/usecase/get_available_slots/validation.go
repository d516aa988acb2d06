package get_available_slots

import (
	"fmt"

	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidInput)
	}

	start := dateutil.StartOfDayUTC(req.StartDate)
	end := dateutil.StartOfDayUTC(req.EndDate)

	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidDateRange)
	}

	if dateutil.DaysBetween(start, end) > maxRangeDays {
		return fmt.Errorf("%w: range must not exceed %d days", ErrInvalidDateRange, maxRangeDays)
	}

	return nil
}
