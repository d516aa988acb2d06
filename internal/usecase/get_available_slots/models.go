package get_available_slots

import (
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// Request модель запроса на получение слотов.
// Для запроса одной даты EndDate равен следующему дню после StartDate.
type Request struct {
	StartDate     time.Time // Начало диапазона (включительно)
	EndDate       time.Time // Конец диапазона (не включительно)
	OnlyAvailable bool      // Только слоты, доступные для бронирования
}

// Response модель ответа со списком слотов
type Response struct {
	StartDate time.Time
	EndDate   time.Time
	Slots     []Slot
}

// Slot модель временного слота в ответе
type Slot struct {
	ID            int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Capacity      int
	PizzaCount    int
	CurrentOrders int
	Remaining     int
	Status        string
}

// fromDomainSlots конвертирует доменные слоты в модель ответа
func fromDomainSlots(slots []*domain.TimeSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:            s.ID,
			Date:          s.Date,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			Capacity:      s.Capacity,
			PizzaCount:    s.PizzaCount,
			CurrentOrders: s.CurrentOrders,
			Remaining:     s.Remaining(),
			Status:        string(s.Status),
		}
	}
	return result
}
