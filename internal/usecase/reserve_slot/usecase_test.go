package reserve_slot

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	slotRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/slot"
)

type mockSlotRepo struct {
	slot       *domain.TimeSlot
	reserveErr error
	addedRefs  []*domain.OrderRef
}

func (m *mockSlotRepo) GetByID(_ context.Context, _ int64) (*domain.TimeSlot, error) {
	if m.slot == nil {
		return nil, slotRepo.ErrSlotNotFound
	}
	return m.slot, nil
}

func (m *mockSlotRepo) Reserve(_ context.Context, _ int64, pizzaCount int) (*domain.TimeSlot, error) {
	if m.reserveErr != nil {
		// Репозиторий возвращает актуальное состояние слота вместе
		// с ошибкой вместимости
		if m.reserveErr == slotRepo.ErrCapacityExceeded {
			return m.slot, m.reserveErr
		}
		return nil, m.reserveErr
	}

	m.slot.PizzaCount += pizzaCount
	m.slot.CurrentOrders++
	if m.slot.PizzaCount >= m.slot.Capacity {
		m.slot.Status = domain.StatusFull
	}
	return m.slot, nil
}

func (m *mockSlotRepo) AddOrderRef(_ context.Context, ref *domain.OrderRef) (*domain.OrderRef, error) {
	m.addedRefs = append(m.addedRefs, ref)
	return ref, nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		SlotID:       1,
		PizzaCount:   2,
		DeliveryType: "delivery",
		Email:        "customer@example.com",
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve fills slot to capacity and marks it full", func(t *testing.T) {
		repo := &mockSlotRepo{slot: &domain.TimeSlot{
			ID: 1, Capacity: 4, PizzaCount: 2, Status: domain.StatusActive,
		}}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.True(t, resp.Accepted)
		assert.Zero(t, resp.Remaining)
		assert.Equal(t, "full", resp.Slot.Status)
		assert.NotEmpty(t, resp.OrderRef) // orderRef генерируется автоматически
		require.Len(t, repo.addedRefs, 1)
		assert.Equal(t, 2, repo.addedRefs[0].PizzaCount)
	})

	t.Run("explicit order ref is kept", func(t *testing.T) {
		repo := &mockSlotRepo{slot: &domain.TimeSlot{
			ID: 1, Capacity: 8, Status: domain.StatusActive,
		}}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		req := validRequest()
		req.OrderRef = "order-42"

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "order-42", resp.OrderRef)
	})

	t.Run("closed slot rejected with CLOSED", func(t *testing.T) {
		repo := &mockSlotRepo{
			slot:       &domain.TimeSlot{ID: 1, Capacity: 8, Status: domain.StatusClosed},
			reserveErr: slotRepo.ErrSlotClosed,
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.False(t, resp.Accepted)
		assert.Equal(t, "CLOSED", resp.Reason)
		assert.Empty(t, repo.addedRefs)
	})

	t.Run("full slot rejected with FULL", func(t *testing.T) {
		repo := &mockSlotRepo{
			slot:       &domain.TimeSlot{ID: 1, Capacity: 4, PizzaCount: 4, Status: domain.StatusFull},
			reserveErr: slotRepo.ErrCapacityExceeded,
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.False(t, resp.Accepted)
		assert.Equal(t, "FULL", resp.Reason)
		assert.Zero(t, resp.Remaining)
	})

	t.Run("oversized order rejected with EXCEEDS_CAPACITY and remaining", func(t *testing.T) {
		repo := &mockSlotRepo{
			slot:       &domain.TimeSlot{ID: 1, Capacity: 8, PizzaCount: 6, Status: domain.StatusActive},
			reserveErr: slotRepo.ErrCapacityExceeded,
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		req := validRequest()
		req.PizzaCount = 3

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)

		assert.False(t, resp.Accepted)
		assert.Equal(t, "EXCEEDS_CAPACITY", resp.Reason)
		assert.Equal(t, 2, resp.Remaining)
	})

	t.Run("unknown slot returns ErrSlotNotFound", func(t *testing.T) {
		repo := &mockSlotRepo{reserveErr: slotRepo.ErrSlotNotFound}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("serialization conflict propagates through the error chain", func(t *testing.T) {
		repo := &mockSlotRepo{
			reserveErr: fmt.Errorf("slot.repository: Reserve - serialization conflict: %w",
				&pq.Error{Code: "40001"}),
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		_, err := uc.Execute(ctx, validRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)

		// Код ошибки драйвера доступен менеджеру транзакций для повтора
		var pqErr *pq.Error
		assert.ErrorAs(t, err, &pqErr)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "zero slot id", mutate: func(r *Request) { r.SlotID = 0 }},
		{name: "zero pizzas", mutate: func(r *Request) { r.PizzaCount = 0 }},
		{name: "too many pizzas", mutate: func(r *Request) { r.PizzaCount = domain.MaxPizzasPerOrder + 1 }},
		{name: "bad delivery type", mutate: func(r *Request) { r.DeliveryType = "drone" }},
		{name: "empty email", mutate: func(r *Request) { r.Email = "  " }},
		{name: "email without at", mutate: func(r *Request) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest()))
}
