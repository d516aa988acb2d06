package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotClosed возвращается при попытке бронирования закрытого оператором слота
	ErrSlotClosed = errors.New("slot.repository: slot is closed")

	// ErrCapacityExceeded возвращается, когда запрошенное количество пицц не помещается в слот
	ErrCapacityExceeded = errors.New("slot.repository: slot capacity exceeded")

	// ErrSlotsAlreadyExist возвращается при генерации слотов на дату, где они уже есть
	ErrSlotsAlreadyExist = errors.New("slot.repository: slots already exist for this date")

	// ErrOrderRefNotFound возвращается, когда ссылка на заказ не найдена в слоте
	ErrOrderRefNotFound = errors.New("slot.repository: order reference not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("slot.repository: invalid slot status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
