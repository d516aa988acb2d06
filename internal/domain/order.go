package domain

import "time"

// DeliveryType способ получения заказа
type DeliveryType string

const (
	DeliveryCourier DeliveryType = "delivery"
	DeliveryPickup  DeliveryType = "pickup"
)

// IsValidDeliveryType проверяет, что способ получения допустим
func IsValidDeliveryType(t DeliveryType) bool {
	return t == DeliveryCourier || t == DeliveryPickup
}

// OrderRef ссылка на заказ, привязанный к слоту.
// Содержимое и цена заказа принадлежат внешней системе заказов —
// здесь хранится только то, что нужно для учёта вместимости слота.
type OrderRef struct {
	ID           int64
	SlotID       int64
	OrderRef     string // Внешний идентификатор заказа
	PizzaCount   int
	DeliveryType DeliveryType
	Email        string
	CreatedAt    time.Time
}
