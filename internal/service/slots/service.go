package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	slotRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/slot"
	"github.com/m04kA/PZA-SlotService/pkg/dateutil"
)

// Service сервис для работы со слотами: генерация, статусные операции, выборки
type Service struct {
	repo      SlotRepository
	schedule  *domain.Schedule
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	repo SlotRepository,
	schedule *domain.Schedule,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		schedule:  schedule,
		txManager: txManager,
		logger:    logger,
	}
}

// GenerateForDate генерирует слоты на одну дату по операционному расписанию.
// Возвращает количество созданных слотов.
// Если слоты на дату уже существуют, возвращает ErrSlotsAlreadyExist.
func (s *Service) GenerateForDate(ctx context.Context, date time.Time) (int, error) {
	day := s.schedule.ForDate(date)

	generated, err := GenerateDaySlots(date, day, s.schedule.SlotDurationMinutes, s.schedule.CapacityPerSlot)
	if err != nil {
		return 0, fmt.Errorf("%w: GenerateForDate - generate slots: %v", ErrInternal, err)
	}

	if len(generated) == 0 {
		s.logger.Info("GenerateForDate: pizzeria is closed on %s, no slots generated", dateutil.FormatDate(date))
		return 0, nil
	}

	// Предварительная проверка даёт понятную ошибку; от гонки двух генераций
	// страхует уникальный индекс (slot_date, start_time)
	exists, err := s.repo.ExistsForDate(ctx, dateutil.StartOfDayUTC(date))
	if err != nil {
		return 0, fmt.Errorf("%w: GenerateForDate - check existing slots: %v", ErrInternal, err)
	}
	if exists {
		return 0, ErrSlotsAlreadyExist
	}

	if err := s.repo.CreateBatch(ctx, generated); err != nil {
		if errors.Is(err, slotRepo.ErrSlotsAlreadyExist) {
			return 0, ErrSlotsAlreadyExist
		}
		return 0, fmt.Errorf("%w: GenerateForDate - create slots: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateForDate: created %d slots for %s", len(generated), dateutil.FormatDate(date))
	return len(generated), nil
}

// GenerateRange генерирует слоты на numberOfDays дней начиная со startDate.
// Собирает пер-дневный итог: неудача одного дня (например, слоты уже есть)
// не прерывает генерацию последующих дней.
func (s *Service) GenerateRange(ctx context.Context, startDate time.Time, numberOfDays int) (*GenerationReport, error) {
	if numberOfDays <= 0 || numberOfDays > domain.MaxGenerateDays {
		return nil, fmt.Errorf("%w: numberOfDays must be between 1 and %d", ErrInvalidInput, domain.MaxGenerateDays)
	}

	report := &GenerationReport{Failures: make([]DayFailure, 0)}
	start := dateutil.StartOfDayUTC(startDate)

	for i := 0; i < numberOfDays; i++ {
		date := start.AddDate(0, 0, i)

		created, err := s.GenerateForDate(ctx, date)
		if err != nil {
			s.logger.Warn("GenerateRange: day %s failed: %v", dateutil.FormatDate(date), err)
			report.Failures = append(report.Failures, DayFailure{
				Date:   date,
				Reason: err.Error(),
			})
			continue
		}

		report.SuccessCount++
		report.SlotsCreated += created
	}

	s.logger.Info("GenerateRange: start=%s days=%d success=%d failures=%d slots=%d",
		dateutil.FormatDate(start), numberOfDays, report.SuccessCount, len(report.Failures), report.SlotsCreated)

	return report, nil
}

// RegenerateDate удаляет слоты даты и генерирует их заново.
// Используется администратором после смены расписания; выполняется в транзакции,
// чтобы покупатели не увидели дату без слотов.
func (s *Service) RegenerateDate(ctx context.Context, date time.Time) (int, error) {
	var created int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		deleted, err := s.repo.DeleteByDate(txCtx, dateutil.StartOfDayUTC(date))
		if err != nil {
			return fmt.Errorf("%w: RegenerateDate - delete slots: %v", ErrInternal, err)
		}
		s.logger.Info("RegenerateDate: deleted %d slots for %s", deleted, dateutil.FormatDate(date))

		created, err = s.GenerateForDate(txCtx, date)
		return err
	})

	if err != nil {
		return 0, err
	}

	return created, nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	slot, err := s.repo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return slot, nil
}

// GetOrderRefs получает ссылки на заказы слота в порядке добавления
func (s *Service) GetOrderRefs(ctx context.Context, slotID int64) ([]*domain.OrderRef, error) {
	refs, err := s.repo.GetOrderRefs(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrderRefs - repository error: %v", ErrInternal, err)
	}
	return refs, nil
}

// SetStatus операторская смена статуса слота.
// Вручную можно установить только active (открыть) или closed (закрыть):
// статус full выставляется и снимается автоматически счётчиками вместимости.
func (s *Service) SetStatus(ctx context.Context, slotID int64, status domain.SlotStatus) (*domain.TimeSlot, error) {
	if status != domain.StatusActive && status != domain.StatusClosed {
		return nil, ErrInvalidStatus
	}

	slot, err := s.repo.SetStatus(ctx, slotID, status)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: slot id=%d status set to %s", slotID, slot.Status)
	return slot, nil
}
