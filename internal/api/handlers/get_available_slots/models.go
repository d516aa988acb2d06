package get_available_slots

import (
	"github.com/m04kA/PZA-SlotService/internal/domain"
	getSlots "github.com/m04kA/PZA-SlotService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse HTTP модель временного слота
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			ID:            s.ID,
			Date:          s.Date.Format(domain.DateFormat),
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			Capacity:      s.Capacity,
			PizzaCount:    s.PizzaCount,
			CurrentOrders: s.CurrentOrders,
			Remaining:     s.Remaining,
			Status:        s.Status,
		}
	}

	return &SlotsResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Slots:     slots,
	}
}
