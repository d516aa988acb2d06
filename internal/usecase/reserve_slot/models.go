package reserve_slot

import (
	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// Request модель запроса на бронирование пицц в слоте.
// OrderRef опционален: при пустом значении usecase генерирует его сам.
type Request struct {
	SlotID       int64
	PizzaCount   int
	DeliveryType string
	Email        string
	OrderRef     string
}

// Response модель результата бронирования.
// Бизнес-отказ (слот закрыт, заполнен, не хватает вместимости) — это
// не ошибка, а Accepted=false со структурированной причиной.
type Response struct {
	Accepted  bool
	Reason    string // CLOSED | FULL | EXCEEDS_CAPACITY, пусто при успехе
	Remaining int    // Оставшаяся вместимость слота
	OrderRef  string // Ссылка на заказ, привязанная к слоту (при успехе)
	Slot      *Slot  // Состояние слота после операции (при успехе)
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
