package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	slotRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/slot"
)

// UseCase use case бронирования пицц в слоте
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

// Execute выполняет бронирование pizzaCount пицц в слоте.
// Решение о вместимости принимает условный UPDATE в репозитории, поэтому
// конкурентные бронирования не могут вместе превысить вместимость слота.
// Бизнес-отказ возвращается как Response с Accepted=false, не как ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	orderRef := req.OrderRef
	if orderRef == "" {
		orderRef = uuid.NewString()
	}

	uc.logger.Info("ReserveSlot: slot=%d pizzas=%d delivery=%s orderRef=%s",
		req.SlotID, req.PizzaCount, req.DeliveryType, orderRef)

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		updated, err := uc.slotRepo.Reserve(txCtx, req.SlotID, req.PizzaCount)
		if err != nil {
			rejection, mapErr := uc.mapReserveError(updated, req.PizzaCount, err)
			if mapErr != nil {
				return mapErr
			}
			resp = rejection
			return nil
		}

		if _, err := uc.slotRepo.AddOrderRef(txCtx, &domain.OrderRef{
			SlotID:       req.SlotID,
			OrderRef:     orderRef,
			PizzaCount:   req.PizzaCount,
			DeliveryType: domain.DeliveryType(req.DeliveryType),
			Email:        req.Email,
		}); err != nil {
			// Цепочка ошибок сохраняется: по ней менеджер транзакций
			// распознаёт конфликт сериализации и повторяет транзакцию
			return fmt.Errorf("%w: failed to add order ref: %w", ErrInternal, err)
		}

		resp = &Response{
			Accepted:  true,
			Remaining: updated.Remaining(),
			OrderRef:  orderRef,
			Slot:      fromDomainSlot(updated),
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			uc.logger.Error("ReserveSlot: slot=%d failed: %v", req.SlotID, err)
		}
		return nil, err
	}

	if resp.Accepted {
		uc.logger.Info("ReserveSlot: slot=%d reserved %d pizzas, remaining=%d",
			req.SlotID, req.PizzaCount, resp.Remaining)
	} else {
		uc.logger.Info("ReserveSlot: slot=%d rejected, reason=%s", req.SlotID, resp.Reason)
	}

	return resp, nil
}

// mapReserveError превращает ошибку репозитория в бизнес-отказ либо ошибку usecase.
// current содержит актуальное состояние слота, когда репозиторий его вернул
// вместе с ошибкой вместимости; причину отказа по нему определяет domain.CheckBooking.
func (uc *UseCase) mapReserveError(current *domain.TimeSlot, pizzaCount int, err error) (*Response, error) {
	switch {
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		return nil, ErrSlotNotFound
	case errors.Is(err, slotRepo.ErrSlotClosed):
		return &Response{
			Accepted: false,
			Reason:   string(domain.RejectClosed),
		}, nil
	case errors.Is(err, slotRepo.ErrCapacityExceeded):
		decision := domain.BookingDecision{Reason: domain.RejectFull}
		if current != nil {
			decision = domain.CheckBooking(current, pizzaCount)
		}
		return &Response{
			Accepted:  false,
			Reason:    string(decision.Reason),
			Remaining: decision.Remaining,
		}, nil
	default:
		return nil, fmt.Errorf("%w: failed to reserve slot: %w", ErrInternal, err)
	}
}
