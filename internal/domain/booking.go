package domain

// RejectReason причина отказа в бронировании слота
type RejectReason string

const (
	RejectClosed          RejectReason = "CLOSED"
	RejectFull            RejectReason = "FULL"
	RejectExceedsCapacity RejectReason = "EXCEEDS_CAPACITY"
)

// BookingDecision результат проверки бронирования.
// Remaining заполняется при отказе EXCEEDS_CAPACITY, чтобы показать
// пользователю, сколько пицц ещё помещается в слот.
type BookingDecision struct {
	Accepted  bool
	Reason    RejectReason
	Remaining int
}

// CheckBooking решает, может ли заказ на pizzaCount пицц попасть в слот.
// Проверка консультативная: фактической защитой от гонки служит условный
// UPDATE в репозитории слотов, а не это чтение.
func CheckBooking(slot *TimeSlot, pizzaCount int) BookingDecision {
	if slot.Status == StatusClosed {
		return BookingDecision{Accepted: false, Reason: RejectClosed}
	}

	if slot.Status == StatusFull {
		return BookingDecision{Accepted: false, Reason: RejectFull}
	}

	if slot.PizzaCount+pizzaCount > slot.Capacity {
		return BookingDecision{
			Accepted:  false,
			Reason:    RejectExceedsCapacity,
			Remaining: slot.Remaining(),
		}
	}

	return BookingDecision{Accepted: true, Remaining: slot.Remaining() - pizzaCount}
}
