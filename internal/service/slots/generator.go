package slots

import (
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
)

// GenerateDaySlots генерирует канонический набор слотов на один день.
// Слоты покрывают [open, close) с фиксированным шагом durationMinutes,
// каждый получает вместимость capacity и статус active.
// Для закрытого дня возвращается пустой список.
// Если рабочие часы не кратны длительности слота, последний неполный слот отбрасывается.
func GenerateDaySlots(date time.Time, day domain.DaySchedule, durationMinutes, capacity int) ([]*domain.TimeSlot, error) {
	if !day.IsOpen {
		return []*domain.TimeSlot{}, nil
	}

	slotDate := dateutil.StartOfDayUTC(date)
	generated := make([]*domain.TimeSlot, 0)

	current := day.OpenTime
	for current.IsBefore(day.CloseTime) {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Слот пересёк полночь — дальше генерировать нечего
			break
		}
		if end.IsAfter(day.CloseTime) {
			break
		}

		generated = append(generated, &domain.TimeSlot{
			Date:          slotDate,
			StartTime:     current,
			EndTime:       end,
			Capacity:      capacity,
			CurrentOrders: 0,
			PizzaCount:    0,
			Status:        domain.StatusActive,
		})

		current = end
	}

	return generated, nil
}
