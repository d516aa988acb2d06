package validate_promo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	promoCache "github.com/m04kA/PZA-SlotService/internal/infra/cache/promo"
	promoRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/promo"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

// UseCase use case проверки промокода и расчёта скидки для корзины
type UseCase struct {
	promoRepo    PromoRepository
	cache        PromoCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil — тогда промокоды читаются напрямую из репозитория.
func NewUseCase(
	promoRepo PromoRepository,
	cache PromoCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		promoRepo:    promoRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет применимость промокода к корзине и считает скидку.
// Цепочка проверок: существование, активность и окно действия, общий лимит,
// лимит на покупателя, минимальная сумма заказа. Первая непройденная проверка
// определяет причину отказа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidatePromo: validation failed: %v", err)
		return nil, err
	}

	code := domain.NormalizeCode(req.Code)
	items := toDomainItems(req.Items)
	subtotal := CartSubtotal(items)

	promo, err := uc.loadPromo(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("ValidatePromo: code=%s not found", code)
			return rejection(code, domain.PromoNotFound, subtotal), nil
		}
		uc.logger.Error("ValidatePromo: code=%s load failed: %v", code, err)
		return nil, fmt.Errorf("%w: failed to load promo: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	if !promo.IsActive || !promo.IsWithinWindow(now) {
		uc.logger.Info("ValidatePromo: code=%s inactive or outside validity window", code)
		return rejection(code, domain.PromoExpiredOrInactive, subtotal), nil
	}
	if promo.IsExhausted() {
		uc.logger.Info("ValidatePromo: code=%s usage limit exhausted", code)
		return rejection(code, domain.PromoAlreadyUsedMax, subtotal), nil
	}

	if promo.UsagePerCustomer > 0 && req.Email != "" {
		used, err := uc.promoRepo.CountRedemptionsByCustomer(ctx, code, req.Email)
		if err != nil {
			uc.logger.Error("ValidatePromo: code=%s count redemptions failed: %v", code, err)
			return nil, fmt.Errorf("%w: failed to count redemptions: %v", ErrInternal, err)
		}
		if used >= promo.UsagePerCustomer {
			uc.logger.Info("ValidatePromo: code=%s customer limit reached", code)
			return rejection(code, domain.PromoAlreadyUsedMax, subtotal), nil
		}
	}

	if subtotal < promo.MinOrderAmount {
		uc.logger.Info("ValidatePromo: code=%s subtotal %.2f below minimum %.2f",
			code, subtotal, promo.MinOrderAmount)
		return rejection(code, domain.PromoBelowMinimum, subtotal), nil
	}

	applicable := ApplicableSubtotal(promo, items)
	discount, freeShipping := CalculateDiscount(promo, applicable)

	uc.logger.Info("ValidatePromo: code=%s valid, discount=%.2f freeShipping=%v",
		code, discount, freeShipping)

	return &Response{
		Valid:        true,
		Code:         code,
		Discount:     discount,
		FreeShipping: freeShipping,
		Subtotal:     Round2(subtotal),
		Total:        Round2(subtotal - discount),
	}, nil
}

// loadPromo читает промокод через кеш (read-through).
// Ошибки кеша не фатальны: при недоступном Redis ходим в репозиторий.
func (uc *UseCase) loadPromo(ctx context.Context, code string) (*domain.PromoCode, error) {
	if uc.cache != nil {
		promo, err := uc.cache.Get(ctx, code)
		if err == nil {
			return promo, nil
		}
		if !errors.Is(err, promoCache.ErrCacheMiss) {
			uc.logger.Warn("ValidatePromo: cache get failed for %s: %v", code, err)
		}
	}

	promo, err := uc.promoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, promo); err != nil {
			uc.logger.Warn("ValidatePromo: cache set failed for %s: %v", code, err)
		}
	}

	return promo, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: promo code is required", ErrInvalidInput)
	}
	if len(req.Code) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: promo code must not exceed %d characters",
			ErrInvalidInput, domain.MaxPromoCodeLength)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart must not be empty", ErrInvalidInput)
	}
	for _, it := range req.Items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: cart item product id is required", ErrInvalidInput)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: cart item price must not be negative", ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: cart item quantity must be positive", ErrInvalidInput)
		}
	}

	if req.Email != "" && len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	return nil
}
