package update_slot_status

import (
	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// UpdateSlotStatusRequest HTTP request model
type UpdateSlotStatusRequest struct {
	Status string `json:"status"` // active | closed
}

// SlotResponse HTTP модель слота после смены статуса
type SlotResponse struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Capacity      int    `json:"capacity"`
	PizzaCount    int    `json:"pizzaCount"`
	CurrentOrders int    `json:"currentOrders"`
	Remaining     int    `json:"remaining"`
	Status        string `json:"status"`
}

// FromDomainSlot конвертирует доменный слот в HTTP response
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:            s.ID,
		Date:          s.Date.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		Capacity:      s.Capacity,
		PizzaCount:    s.PizzaCount,
		CurrentOrders: s.CurrentOrders,
		Remaining:     s.Remaining(),
		Status:        string(s.Status),
	}
}
