package promo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func promoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "promo_type", "value", "min_order_amount", "max_discount",
		"usage_limit", "usage_count", "usage_per_customer", "valid_from", "valid_until",
		"is_active", "applicable_categories", "excluded_products", "created_at", "updated_at",
	}).AddRow(
		1, "PIZZA20", "percentage", 20.0, 0.0, nil,
		nil, 0, 0, time.Now().AddDate(0, -1, 0), time.Now().AddDate(0, 1, 0),
		true, "{pizza}", "{}", time.Now(), time.Now(),
	)
}

func TestRepository_GetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("code is normalized before lookup", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM promo_codes").
			WithArgs("PIZZA20").
			WillReturnRows(promoRows())

		promo, err := repo.GetByCode(ctx, "  pizza20 ")
		require.NoError(t, err)
		assert.Equal(t, "PIZZA20", promo.Code)
		assert.Equal(t, domain.PromoPercentage, promo.Type)
		assert.Equal(t, []string{"pizza"}, promo.ApplicableCategories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM promo_codes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, ErrPromoNotFound)
	})
}

func TestRepository_IncrementUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE promo_codes").
			WithArgs("PIZZA20").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.IncrementUsage(ctx, "pizza20"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("limit reached distinguished from missing code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		// Условный UPDATE не затронул строк, но код существует
		mock.ExpectExec("UPDATE promo_codes").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM promo_codes").
			WillReturnRows(promoRows())

		assert.ErrorIs(t, repo.IncrementUsage(ctx, "PIZZA20"), ErrUsageLimitReached)
	})

	t.Run("missing code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE promo_codes").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM promo_codes").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		assert.ErrorIs(t, repo.IncrementUsage(ctx, "NOPE"), ErrPromoNotFound)
	})
}

func TestRepository_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO promo_codes").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(ctx, &domain.PromoCode{Code: "pizza20", Type: domain.PromoPercentage, Value: 20})
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM promo_codes").
			WithArgs("PIZZA20").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "pizza20"))
	})

	t.Run("missing code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM promo_codes").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "NOPE"), ErrPromoNotFound)
	})
}

func TestRepository_CountRedemptionsByCustomer(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("ONCE", "Customer@Example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountRedemptionsByCustomer(ctx, "once", "Customer@Example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
