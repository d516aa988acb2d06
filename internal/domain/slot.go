package domain

import (
	"time"

	"github.com/m04kA/PZA-SlotService/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	StatusActive SlotStatus = "active"
	StatusFull   SlotStatus = "full"
	StatusClosed SlotStatus = "closed"
)

// IsValidSlotStatus проверяет, что статус является допустимым
func IsValidSlotStatus(s SlotStatus) bool {
	return s == StatusActive || s == StatusFull || s == StatusClosed
}

// TimeSlot represents a fixed time window with a bounded pizza capacity
type TimeSlot struct {
	ID        int64
	Date      time.Time // начало суток UTC
	StartTime types.TimeString
	EndTime   types.TimeString

	Capacity      int // вместимость печи на слот (в пиццах)
	CurrentOrders int // количество заказов, привязанных к слоту
	PizzaCount    int // суммарное количество пицц по заказам слота

	Status SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining returns the remaining pizza headroom of the slot
func (s *TimeSlot) Remaining() int {
	remaining := s.Capacity - s.PizzaCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.PizzaCount >= s.Capacity
}

// IsClosed returns true if an operator has closed the slot for bookings
func (s *TimeSlot) IsClosed() bool {
	return s.Status == StatusClosed
}

// IsAvailable returns true if the slot can still accept at least one pizza
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == StatusActive && s.PizzaCount < s.Capacity
}

// CanAccept returns true if the slot can accept pizzaCount more pizzas
func (s *TimeSlot) CanAccept(pizzaCount int) bool {
	return s.Status == StatusActive && s.PizzaCount+pizzaCount <= s.Capacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.PizzaCount) / float64(s.Capacity) * 100
}

// SlotRangeFilter фильтр для выборки слотов по диапазону дат
type SlotRangeFilter struct {
	StartDate     time.Time // Начало диапазона (включительно)
	EndDate       time.Time // Конец диапазона (не включительно)
	OnlyAvailable bool      // Только слоты со статусом active и свободной вместимостью
}
