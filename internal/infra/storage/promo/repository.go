package promo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/dbmetrics"
	"github.com/m04kA/PZA-SlotService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolationCode = "23505"

var promoColumns = []string{
	"id",
	"code",
	"promo_type",
	"value",
	"min_order_amount",
	"max_discount",
	"usage_limit",
	"usage_count",
	"usage_per_customer",
	"valid_from",
	"valid_until",
	"is_active",
	"applicable_categories",
	"excluded_products",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый промокод. Код хранится в верхнем регистре.
func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	promo.Code = domain.NormalizeCode(promo.Code)

	query, args, err := psqlbuilder.Insert("promo_codes").
		Columns(
			"code",
			"promo_type",
			"value",
			"min_order_amount",
			"max_discount",
			"usage_limit",
			"usage_count",
			"usage_per_customer",
			"valid_from",
			"valid_until",
			"is_active",
			"applicable_categories",
			"excluded_products",
		).
		Values(
			promo.Code,
			promo.Type,
			promo.Value,
			promo.MinOrderAmount,
			promo.MaxDiscount,
			promo.UsageLimit,
			promo.UsageCount,
			promo.UsagePerCustomer,
			promo.ValidFrom,
			promo.ValidUntil,
			promo.IsActive,
			pq.Array(promo.ApplicableCategories),
			pq.Array(promo.ExcludedProducts),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&promo.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// GetByCode получает промокод по коду (регистронезависимо)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promoColumns...).
		From("promo_codes").
		Where(squirrel.Eq{"code": domain.NormalizeCode(code)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPromo(executor.QueryRowContext(ctx, query, args...), "GetByCode")
}

// List возвращает промокоды, отсортированные по дате создания (сначала новые)
func (r *Repository) List(ctx context.Context, limit, offset uint64) ([]*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit == 0 {
		limit = 50
	}

	query, args, err := psqlbuilder.Select(promoColumns...).
		From("promo_codes").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promos := make([]*domain.PromoCode, 0)
	for rows.Next() {
		promo, err := r.scanPromoFromRows(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promos, nil
}

// Update обновляет параметры промокода по коду
func (r *Repository) Update(ctx context.Context, code string, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("promo_type", promo.Type).
		Set("value", promo.Value).
		Set("min_order_amount", promo.MinOrderAmount).
		Set("max_discount", promo.MaxDiscount).
		Set("usage_limit", promo.UsageLimit).
		Set("usage_per_customer", promo.UsagePerCustomer).
		Set("valid_from", promo.ValidFrom).
		Set("valid_until", promo.ValidUntil).
		Set("is_active", promo.IsActive).
		Set("applicable_categories", pq.Array(promo.ApplicableCategories)).
		Set("excluded_products", pq.Array(promo.ExcludedProducts)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": domain.NormalizeCode(code)}).
		Suffix("RETURNING " + joinColumns(promoColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanPromo(executor.QueryRowContext(ctx, query, args...), "Update")
}

// Delete удаляет промокод по коду
func (r *Repository) Delete(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promo_codes").
		Where(squirrel.Eq{"code": domain.NormalizeCode(code)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromoNotFound
	}

	return nil
}

// IncrementUsage атомарно увеличивает счётчик использований.
// Инкремент условный: не выполняется, если usage_limit уже исчерпан.
func (r *Repository) IncrementUsage(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": domain.NormalizeCode(code)}).
		Where(squirrel.Expr("(usage_limit IS NULL OR usage_count < usage_limit)")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо кода нет, либо лимит исчерпан — различаем для вызывающего
		if _, err := r.GetByCode(ctx, code); err != nil {
			return err
		}
		return ErrUsageLimitReached
	}

	return nil
}

// CreateRedemption фиксирует факт использования промокода в завершённом заказе
func (r *Repository) CreateRedemption(ctx context.Context, red *domain.PromoRedemption) (*domain.PromoRedemption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promo_redemptions").
		Columns("code", "email", "order_ref", "discount").
		Values(domain.NormalizeCode(red.Code), red.Email, red.OrderRef, red.Discount).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRedemption - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&red.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRedemption - execute insert: %v", ErrExecQuery, err)
	}

	red.CreatedAt = createdAt.Time
	return red, nil
}

// CountRedemptionsByCustomer возвращает количество использований кода покупателем.
// Используется для проверки лимита usage_per_customer.
func (r *Repository) CountRedemptionsByCustomer(ctx context.Context, code, email string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("promo_redemptions").
		Where(squirrel.Eq{"code": domain.NormalizeCode(code)}).
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountRedemptionsByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountRedemptionsByCustomer - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanPromo сканирует один промокод из строки результата
func (r *Repository) scanPromo(row *sql.Row, method string) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	var createdAt, updatedAt sql.NullTime
	var categories, excluded pq.StringArray

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Type,
		&promo.Value,
		&promo.MinOrderAmount,
		&promo.MaxDiscount,
		&promo.UsageLimit,
		&promo.UsageCount,
		&promo.UsagePerCustomer,
		&promo.ValidFrom,
		&promo.ValidUntil,
		&promo.IsActive,
		&categories,
		&excluded,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan promo: %v", ErrScanRow, method, err)
	}

	promo.ApplicableCategories = categories
	promo.ExcludedProducts = excluded
	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}

// scanPromoFromRows сканирует промокод из *sql.Rows
func (r *Repository) scanPromoFromRows(rows *sql.Rows) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	var createdAt, updatedAt sql.NullTime
	var categories, excluded pq.StringArray

	err := rows.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Type,
		&promo.Value,
		&promo.MinOrderAmount,
		&promo.MaxDiscount,
		&promo.UsageLimit,
		&promo.UsageCount,
		&promo.UsagePerCustomer,
		&promo.ValidFrom,
		&promo.ValidUntil,
		&promo.IsActive,
		&categories,
		&excluded,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
	}

	promo.ApplicableCategories = categories
	promo.ExcludedProducts = excluded
	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
