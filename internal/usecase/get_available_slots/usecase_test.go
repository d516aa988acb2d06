package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	slotsService "github.com/m04kA/PZA-SlotService/internal/service/slots"
)

type mockSlotRepo struct {
	existing map[string]bool
	slots    []*domain.TimeSlot
}

func (m *mockSlotRepo) GetByDateRange(_ context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0)
	for _, s := range m.slots {
		if s.Date.Before(filter.StartDate) || !s.Date.Before(filter.EndDate) {
			continue
		}
		if filter.OnlyAvailable && !s.IsAvailable() {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSlotRepo) ExistsForDate(_ context.Context, date time.Time) (bool, error) {
	return m.existing[date.Format(domain.DateFormat)], nil
}

type mockGenerator struct {
	repo      *mockSlotRepo
	generated []string
	err       error
}

func (m *mockGenerator) GenerateForDate(_ context.Context, date time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	key := date.Format(domain.DateFormat)
	m.generated = append(m.generated, key)
	m.repo.existing[key] = true
	return 1, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newUseCase(repo *mockSlotRepo, gen *mockGenerator) *UseCase {
	uc := NewUseCase(repo, gen, noopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("generates missing slots on demand", func(t *testing.T) {
		repo := &mockSlotRepo{existing: map[string]bool{"2026-09-02": true}}
		gen := &mockGenerator{repo: repo}
		uc := newUseCase(repo, gen)

		_, err := uc.Execute(ctx, &Request{
			StartDate: day(2026, 9, 2),
			EndDate:   day(2026, 9, 5),
		})
		require.NoError(t, err)

		// Генерация только для дат без слотов
		assert.Equal(t, []string{"2026-09-03", "2026-09-04"}, gen.generated)
	})

	t.Run("past days are not generated", func(t *testing.T) {
		repo := &mockSlotRepo{existing: map[string]bool{}}
		gen := &mockGenerator{repo: repo}
		uc := newUseCase(repo, gen)

		_, err := uc.Execute(ctx, &Request{
			StartDate: day(2026, 8, 30),
			EndDate:   day(2026, 9, 2),
		})
		require.NoError(t, err)

		// 30-е и 31-е уже прошли, генерируется только сегодняшний день
		assert.Equal(t, []string{"2026-09-01"}, gen.generated)
	})

	t.Run("concurrent generation race tolerated", func(t *testing.T) {
		repo := &mockSlotRepo{existing: map[string]bool{}}
		gen := &mockGenerator{repo: repo, err: slotsService.ErrSlotsAlreadyExist}
		uc := newUseCase(repo, gen)

		_, err := uc.Execute(ctx, &Request{
			StartDate: day(2026, 9, 2),
			EndDate:   day(2026, 9, 3),
		})
		assert.NoError(t, err)
	})

	t.Run("only available filter", func(t *testing.T) {
		repo := &mockSlotRepo{
			existing: map[string]bool{"2026-09-02": true},
			slots: []*domain.TimeSlot{
				{ID: 1, Date: day(2026, 9, 2), Capacity: 8, PizzaCount: 2, Status: domain.StatusActive},
				{ID: 2, Date: day(2026, 9, 2), Capacity: 8, PizzaCount: 8, Status: domain.StatusFull},
				{ID: 3, Date: day(2026, 9, 2), Capacity: 8, PizzaCount: 0, Status: domain.StatusClosed},
			},
		}
		uc := newUseCase(repo, &mockGenerator{repo: repo})

		resp, err := uc.Execute(ctx, &Request{
			StartDate:     day(2026, 9, 2),
			EndDate:       day(2026, 9, 3),
			OnlyAvailable: true,
		})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 1)
		assert.Equal(t, int64(1), resp.Slots[0].ID)
		assert.Equal(t, 6, resp.Slots[0].Remaining)
	})

	t.Run("validation", func(t *testing.T) {
		uc := newUseCase(&mockSlotRepo{existing: map[string]bool{}}, &mockGenerator{})

		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{StartDate: day(2026, 9, 2), EndDate: day(2026, 9, 2)})
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		_, err = uc.Execute(ctx, &Request{StartDate: day(2026, 9, 2), EndDate: day(2026, 9, 1)})
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		_, err = uc.Execute(ctx, &Request{StartDate: day(2026, 9, 1), EndDate: day(2026, 12, 1)})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
