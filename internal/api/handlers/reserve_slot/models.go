package reserve_slot

import (
	reserveSlot "github.com/m04kA/PZA-SlotService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	PizzaCount   int    `json:"pizzaCount"`
	DeliveryType string `json:"deliveryType"` // delivery | pickup
	Email        string `json:"email"`
	OrderRef     string `json:"orderRef,omitempty"` // Опционально: генерируется при отсутствии
}

// ReserveSlotResponse HTTP response model
type ReserveSlotResponse struct {
	Accepted  bool          `json:"accepted"`
	Reason    string        `json:"reason,omitempty"` // CLOSED | FULL | EXCEEDS_CAPACITY
	Remaining int           `json:"remaining"`
	OrderRef  string        `json:"orderRef,omitempty"`
	Slot      *SlotResponse `json:"slot,omitempty"`
}

// SlotResponse HTTP модель слота после бронирования
type SlotResponse struct {
	ID         int64  `json:"id"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Capacity   int    `json:"capacity"`
	PizzaCount int    `json:"pizzaCount"`
	Remaining  int    `json:"remaining"`
	Status     string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReserveSlotResponse {
	out := &ReserveSlotResponse{
		Accepted:  resp.Accepted,
		Reason:    resp.Reason,
		Remaining: resp.Remaining,
		OrderRef:  resp.OrderRef,
	}

	if resp.Slot != nil {
		out.Slot = &SlotResponse{
			ID:         resp.Slot.ID,
			StartTime:  resp.Slot.StartTime.String(),
			EndTime:    resp.Slot.EndTime.String(),
			Capacity:   resp.Slot.Capacity,
			PizzaCount: resp.Slot.PizzaCount,
			Remaining:  resp.Slot.Remaining,
			Status:     resp.Slot.Status,
		}
	}

	return out
}
