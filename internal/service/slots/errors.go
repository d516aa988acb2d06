package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrSlotsAlreadyExist возвращается при генерации слотов на дату, где они уже есть
	ErrSlotsAlreadyExist = errors.New("slots: slots already exist for this date")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус вручную
	ErrInvalidStatus = errors.New("slots: invalid slot status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
