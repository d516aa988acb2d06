package validate_promo

import "github.com/m04kA/PZA-SlotService/internal/domain"

// Request модель запроса на проверку промокода для корзины
type Request struct {
	Code  string
	Email string
	Items []CartItem
}

// CartItem позиция корзины в запросе
type CartItem struct {
	ProductID string
	Category  string
	Price     float64
	Quantity  int
}

// Response модель результата проверки промокода.
// Неприменимый код — это не ошибка, а Valid=false со структурированной причиной.
type Response struct {
	Valid        bool
	Reason       string  // NOT_FOUND | EXPIRED_OR_INACTIVE | ALREADY_USED_MAX | BELOW_MINIMUM
	Code         string  // Нормализованный код
	Discount     float64 // Сумма скидки, округлена до 2 знаков
	FreeShipping bool
	Subtotal     float64 // Полная стоимость корзины
	Total        float64 // Стоимость корзины после скидки
}

// toDomainItems конвертирует позиции запроса в доменные
func toDomainItems(items []CartItem) []domain.CartItem {
	result := make([]domain.CartItem, len(items))
	for i, it := range items {
		result[i] = domain.CartItem{
			ProductID: it.ProductID,
			Category:  it.Category,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return result
}

// rejection формирует ответ-отказ с причиной
func rejection(code string, reason domain.PromoRejectReason, subtotal float64) *Response {
	return &Response{
		Valid:    false,
		Reason:   string(reason),
		Code:     code,
		Subtotal: Round2(subtotal),
		Total:    Round2(subtotal),
	}
}
