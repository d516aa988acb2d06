package promos

import "errors"

var (
	// ErrPromoNotFound возвращается, когда промокод не найден
	ErrPromoNotFound = errors.New("promos: promo code not found")

	// ErrDuplicateCode возвращается при создании промокода с существующим кодом
	ErrDuplicateCode = errors.New("promos: promo code already exists")

	// ErrUsageLimitReached возвращается, когда общий лимит использований исчерпан
	ErrUsageLimitReached = errors.New("promos: usage limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promos: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promos: internal error")
)
