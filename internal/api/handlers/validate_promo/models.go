package validate_promo

import (
	validatePromo "github.com/m04kA/PZA-SlotService/internal/usecase/validate_promo"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code  string            `json:"code"`
	Email string            `json:"email,omitempty"`
	Items []CartItemRequest `json:"items"`
}

// CartItemRequest HTTP модель позиции корзины
type CartItemRequest struct {
	ProductID string  `json:"productId"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ValidatePromoResponse HTTP response model
type ValidatePromoResponse struct {
	Valid        bool    `json:"valid"`
	Reason       string  `json:"reason,omitempty"` // NOT_FOUND | EXPIRED_OR_INACTIVE | ALREADY_USED_MAX | BELOW_MINIMUM
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	FreeShipping bool    `json:"freeShipping"`
	Subtotal     float64 `json:"subtotal"`
	Total        float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePromoRequest) ToUseCaseRequest() *validatePromo.Request {
	items := make([]validatePromo.CartItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = validatePromo.CartItem{
			ProductID: it.ProductID,
			Category:  it.Category,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	return &validatePromo.Request{
		Code:  r.Code,
		Email: r.Email,
		Items: items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	return &ValidatePromoResponse{
		Valid:        resp.Valid,
		Reason:       resp.Reason,
		Code:         resp.Code,
		Discount:     resp.Discount,
		FreeShipping: resp.FreeShipping,
		Subtotal:     resp.Subtotal,
		Total:        resp.Total,
	}
}
