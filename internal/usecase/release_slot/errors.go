package release_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_slot: invalid input data")

	// ErrSlotNotFound возвращается, если слот не найден
	ErrSlotNotFound = errors.New("release_slot: slot not found")

	// ErrOrderNotFound возвращается, если заказ не привязан к слоту
	ErrOrderNotFound = errors.New("release_slot: order not found in slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_slot: internal error")
)
