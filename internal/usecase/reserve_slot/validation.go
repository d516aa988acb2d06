package reserve_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	if req.PizzaCount < domain.MinPizzasPerOrder || req.PizzaCount > domain.MaxPizzasPerOrder {
		return fmt.Errorf("%w: pizza count must be between %d and %d",
			ErrInvalidInput, domain.MinPizzasPerOrder, domain.MaxPizzasPerOrder)
	}

	if !domain.IsValidDeliveryType(domain.DeliveryType(req.DeliveryType)) {
		return fmt.Errorf("%w: delivery type must be one of: %s, %s",
			ErrInvalidInput, domain.DeliveryCourier, domain.DeliveryPickup)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	return nil
}
