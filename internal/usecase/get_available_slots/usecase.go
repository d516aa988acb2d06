package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	slotsService "github.com/m04kA/PZA-SlotService/internal/service/slots"
	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
)

// maxRangeDays максимальная длина запрашиваемого диапазона дат
const maxRangeDays = 31

// UseCase use case получения слотов на дату или диапазон дат
type UseCase struct {
	slotRepo     SlotRepository
	generator    SlotGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	generator SlotGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		generator:    generator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Для будущих дат без слотов генерация выполняется по требованию
// по операционному расписанию пиццерии.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	start := dateutil.StartOfDayUTC(req.StartDate)
	end := dateutil.StartOfDayUTC(req.EndDate)

	uc.logger.Info("GetAvailableSlots: range=[%s, %s) onlyAvailable=%v",
		dateutil.FormatDate(start), dateutil.FormatDate(end), req.OnlyAvailable)

	if err := uc.ensureSlotsExist(ctx, start, end, now); err != nil {
		return nil, err
	}

	slots, err := uc.slotRepo.GetByDateRange(ctx, domain.SlotRangeFilter{
		StartDate:     start,
		EndDate:       end,
		OnlyAvailable: req.OnlyAvailable,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: returning %d slots", len(slots))

	return &Response{
		StartDate: start,
		EndDate:   end,
		Slots:     fromDomainSlots(slots),
	}, nil
}

// ensureSlotsExist генерирует слоты для будущих дат диапазона, где их ещё нет.
// Прошедшие даты пропускаются: по ним слоты либо уже есть, либо не нужны.
func (uc *UseCase) ensureSlotsExist(ctx context.Context, start, end, now time.Time) error {
	for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
		if dateutil.IsPastDay(date, now) {
			continue
		}

		exists, err := uc.slotRepo.ExistsForDate(ctx, date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to check slots for %s: %v", dateutil.FormatDate(date), err)
			return fmt.Errorf("%w: failed to check existing slots: %v", ErrInternal, err)
		}
		if exists {
			continue
		}

		if _, err := uc.generator.GenerateForDate(ctx, date); err != nil {
			// Конкурентный запрос успел сгенерировать слоты первым — не ошибка
			if errors.Is(err, slotsService.ErrSlotsAlreadyExist) {
				continue
			}
			uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v", dateutil.FormatDate(date), err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
	}

	return nil
}
