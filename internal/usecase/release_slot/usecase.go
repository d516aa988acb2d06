package release_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	slotRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/slot"
)

// UseCase use case освобождения вместимости слота при отмене заказа
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute освобождает вместимость, занятую заказом в слоте.
// Удаление привязки заказа и декремент счётчиков выполняются в одной
// транзакции: резерв и его освобождение образуют round-trip, возвращающий
// слот в исходное состояние.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReleaseSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ReleaseSlot: slot=%d orderRef=%s", req.SlotID, req.OrderRef)

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		removed, err := uc.slotRepo.RemoveOrderRef(txCtx, req.SlotID, req.OrderRef)
		if err != nil {
			if errors.Is(err, slotRepo.ErrOrderRefNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: failed to remove order ref: %v", ErrInternal, err)
		}

		updated, err := uc.slotRepo.Release(txCtx, req.SlotID, removed.PizzaCount)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		resp = &Response{
			Released:  removed.PizzaCount,
			Remaining: updated.Remaining(),
			Slot:      fromDomainSlot(updated),
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) && !errors.Is(err, ErrSlotNotFound) {
			uc.logger.Error("ReleaseSlot: slot=%d failed: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("ReleaseSlot: slot=%d released %d pizzas, remaining=%d",
		req.SlotID, resp.Released, resp.Remaining)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OrderRef) == "" {
		return fmt.Errorf("%w: order ref is required", ErrInvalidInput)
	}

	return nil
}
