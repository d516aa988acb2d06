package promos

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	promoRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/promo"
)

// Service сервис административного управления промокодами
type Service struct {
	repo      PromoRepository
	cache     PromoCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса промокодов.
// cache может быть nil, если Redis выключен конфигурацией.
func NewService(
	repo PromoRepository,
	cache PromoCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает новый промокод
func (s *Service) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	if err := validatePromo(promo); err != nil {
		s.logger.Warn("Create: validation failed for code=%s: %v", promo.Code, err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: duplicate code=%s", promo.Code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("Create: repository error for code=%s: %v", promo.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: promo code=%s created, id=%d", created.Code, created.ID)
	return created, nil
}

// GetByCode получает промокод по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}
	return promo, nil
}

// List возвращает страницу промокодов
func (s *Service) List(ctx context.Context, limit, offset uint64) ([]*domain.PromoCode, error) {
	promos, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return promos, nil
}

// Update обновляет промокод и инвалидирует его в кеше
func (s *Service) Update(ctx context.Context, code string, promo *domain.PromoCode) (*domain.PromoCode, error) {
	if err := validatePromo(promo); err != nil {
		s.logger.Warn("Update: validation failed for code=%s: %v", code, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, code, promo)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			return nil, ErrPromoNotFound
		}
		s.logger.Error("Update: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, code)
	s.logger.Info("Update: promo code=%s updated", updated.Code)
	return updated, nil
}

// Delete удаляет промокод и инвалидирует его в кеше
func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			return ErrPromoNotFound
		}
		s.logger.Error("Delete: repository error for code=%s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, code)
	s.logger.Info("Delete: promo code=%s deleted", domain.NormalizeCode(code))
	return nil
}

// Redeem фиксирует использование промокода при завершении заказа.
// Запись об использовании и условный инкремент usage_count выполняются
// в одной транзакции, чтобы лимиты не расходились с историей.
func (s *Service) Redeem(ctx context.Context, red *domain.PromoRedemption) (*domain.PromoRedemption, error) {
	if red.Email == "" || red.OrderRef == "" {
		return nil, fmt.Errorf("%w: email and orderRef are required", ErrInvalidInput)
	}
	if red.Discount < 0 {
		return nil, fmt.Errorf("%w: discount must not be negative", ErrInvalidInput)
	}

	var created *domain.PromoRedemption

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.IncrementUsage(txCtx, red.Code); err != nil {
			switch {
			case errors.Is(err, promoRepo.ErrPromoNotFound):
				return ErrPromoNotFound
			case errors.Is(err, promoRepo.ErrUsageLimitReached):
				return ErrUsageLimitReached
			default:
				return fmt.Errorf("%w: Redeem - increment usage: %v", ErrInternal, err)
			}
		}

		var err error
		created, err = s.repo.CreateRedemption(txCtx, red)
		if err != nil {
			return fmt.Errorf("%w: Redeem - create redemption: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, red.Code)
	s.logger.Info("Redeem: code=%s email=%s order=%s discount=%.2f",
		created.Code, created.Email, created.OrderRef, created.Discount)
	return created, nil
}

func (s *Service) invalidateCache(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, code); err != nil {
		// Кеш с TTL, поэтому ошибка инвалидации не фатальна
		s.logger.Warn("invalidateCache: failed for code=%s: %v", domain.NormalizeCode(code), err)
	}
}

// validatePromo проверяет бизнес-корректность параметров промокода
func validatePromo(promo *domain.PromoCode) error {
	code := domain.NormalizeCode(promo.Code)
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(code) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: code is longer than %d characters", ErrInvalidInput, domain.MaxPromoCodeLength)
	}

	if !domain.IsValidPromoType(promo.Type) {
		return fmt.Errorf("%w: unknown promo type %q", ErrInvalidInput, promo.Type)
	}

	switch promo.Type {
	case domain.PromoPercentage:
		if promo.Value <= 0 || promo.Value > domain.MaxPercentageValue {
			return fmt.Errorf("%w: percentage value must be in (0, %d]", ErrInvalidInput, domain.MaxPercentageValue)
		}
	case domain.PromoFixed:
		if promo.Value <= 0 {
			return fmt.Errorf("%w: fixed value must be positive", ErrInvalidInput)
		}
	case domain.PromoFreeShipping:
		// Величина не используется: скидка считается на этапе расчёта доставки
	}

	if promo.MinOrderAmount < 0 {
		return fmt.Errorf("%w: minOrderAmount must not be negative", ErrInvalidInput)
	}
	if promo.MaxDiscount != nil && *promo.MaxDiscount <= 0 {
		return fmt.Errorf("%w: maxDiscount must be positive when set", ErrInvalidInput)
	}
	if promo.UsageLimit != nil && *promo.UsageLimit <= 0 {
		return fmt.Errorf("%w: usageLimit must be positive when set", ErrInvalidInput)
	}
	if promo.UsagePerCustomer < 0 {
		return fmt.Errorf("%w: usagePerCustomer must not be negative", ErrInvalidInput)
	}

	if promo.ValidFrom.IsZero() || promo.ValidUntil.IsZero() {
		return fmt.Errorf("%w: validity window is required", ErrInvalidInput)
	}
	// Строго позже: БД требует непустое окно действия
	if !promo.ValidUntil.After(promo.ValidFrom) {
		return fmt.Errorf("%w: validUntil must be after validFrom", ErrInvalidInput)
	}

	return nil
}
