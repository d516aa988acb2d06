package release_slot

import (
	releaseSlot "github.com/m04kA/PZA-SlotService/internal/usecase/release_slot"
)

// ReleaseSlotRequest HTTP request model
type ReleaseSlotRequest struct {
	OrderRef string `json:"orderRef"`
}

// ReleaseSlotResponse HTTP response model
type ReleaseSlotResponse struct {
	Released  int           `json:"released"`
	Remaining int           `json:"remaining"`
	Slot      *SlotResponse `json:"slot"`
}

// SlotResponse HTTP модель слота после освобождения
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
func FromUseCaseResponse(resp *releaseSlot.Response) *ReleaseSlotResponse {
	out := &ReleaseSlotResponse{
		Released:  resp.Released,
		Remaining: resp.Remaining,
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
