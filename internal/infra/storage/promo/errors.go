package promo

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден
	ErrPromoNotFound = errors.New("promo.repository: promo code not found")

	// ErrDuplicateCode возвращается при попытке создать промокод с существующим кодом
	ErrDuplicateCode = errors.New("promo.repository: promo code already exists")

	// ErrUsageLimitReached возвращается, когда общий лимит использований исчерпан
	ErrUsageLimitReached = errors.New("promo.repository: usage limit reached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promo.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promo.repository: failed to scan row")
)
