package release_slot

import (
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// Request модель запроса на освобождение вместимости слота (отмена заказа)
type Request struct {
	SlotID   int64
	OrderRef string
}

// Response модель результата освобождения
type Response struct {
	Released  int   // Количество освобождённых пицц
	Remaining int   // Оставшаяся вместимость слота после освобождения
	Slot      *Slot // Состояние слота после операции
}

// Slot модель слота в ответе
type Slot struct {
	ID         int64
	StartTime  types.TimeString
	EndTime    types.TimeString
	Capacity   int
	PizzaCount int
	Remaining  int
	Status     string
}

// fromDomainSlot конвертирует доменный слот в модель ответа
func fromDomainSlot(s *domain.TimeSlot) *Slot {
	return &Slot{
		ID:         s.ID,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Capacity:   s.Capacity,
		PizzaCount: s.PizzaCount,
		Remaining:  s.Remaining(),
		Status:     string(s.Status),
	}
}
