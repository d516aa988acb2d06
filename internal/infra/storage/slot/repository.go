package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PZA-SlotService/internal/domain"
	"github.com/m04kA/PZA-SlotService/pkg/dbmetrics"
	"github.com/m04kA/PZA-SlotService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolationCode = "23505"

// serializationFailureCode код ошибки PostgreSQL при конфликте сериализации
const serializationFailureCode = "40001"

// isSerializationFailure возвращает true для конфликта сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailureCode
}

var slotColumns = []string{
	"id",
	"slot_date",
	"start_time",
	"end_time",
	"capacity",
	"current_orders",
	"pizza_count",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает все слоты одного дня одним INSERT.
// Уникальный индекс (slot_date, start_time) гарантирует идемпотентность:
// повторная генерация на занятую дату возвращает ErrSlotsAlreadyExist.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"slot_date",
			"start_time",
			"end_time",
			"capacity",
			"current_orders",
			"pizza_count",
			"status",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.Date,
			s.StartTime,
			s.EndTime,
			s.Capacity,
			s.CurrentOrders,
			s.PizzaCount,
			s.Status,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return ErrSlotsAlreadyExist
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ExistsForDate проверяет, есть ли слоты на указанную дату
func (r *Repository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_slots").
		Where(squirrel.Eq{"slot_date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - build select query: %v", ErrBuildQuery, err)
	}

	var exists int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByDateRange получает слоты с датой в [StartDate, EndDate),
// отсортированные по дате и времени начала.
// При OnlyAvailable возвращаются только активные слоты со свободной вместимостью.
func (r *Repository) GetByDateRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.GtOrEq{"slot_date": filter.StartDate}).
		Where(squirrel.Lt{"slot_date": filter.EndDate}).
		OrderBy("slot_date ASC, start_time ASC")

	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"status": domain.StatusActive}).
			Where(squirrel.Expr("pizza_count < capacity"))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// Reserve атомарно резервирует pizzaCount пицц в слоте.
// Проверка вместимости и инкремент счётчиков выполняются одним условным UPDATE,
// поэтому два конкурентных бронирования не могут вместе превысить вместимость.
// При исчерпании вместимости слот переводится в статус full.
func (r *Repository) Reserve(ctx context.Context, slotID int64, pizzaCount int) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("pizza_count", squirrel.Expr("pizza_count + ?", pizzaCount)).
		Set("current_orders", squirrel.Expr("current_orders + 1")).
		Set("status", squirrel.Expr(
			"CASE WHEN pizza_count + ? >= capacity THEN 'full' ELSE status END", pizzaCount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.NotEq{"status": domain.StatusClosed}).
		Where(squirrel.Expr("pizza_count + ? <= capacity", pizzaCount)).
		Suffix("RETURNING " + joinColumns(slotColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...), "Reserve")
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrSlotNotFound) {
		return nil, err
	}

	// Условие UPDATE не выполнилось — выясняем причину для пользовательского сообщения
	current, getErr := r.GetByID(ctx, slotID)
	if getErr != nil {
		return nil, getErr
	}
	if current.IsClosed() {
		return nil, ErrSlotClosed
	}
	return current, ErrCapacityExceeded
}

// Release атомарно освобождает pizzaCount пицц в слоте (отмена заказа).
// Счётчики не опускаются ниже нуля; статус full возвращается к active,
// когда появляется свободная вместимость. Статус closed не трогаем.
func (r *Repository) Release(ctx context.Context, slotID int64, pizzaCount int) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("pizza_count", squirrel.Expr("GREATEST(pizza_count - ?, 0)", pizzaCount)).
		Set("current_orders", squirrel.Expr("GREATEST(current_orders - 1, 0)")).
		Set("status", squirrel.Expr(
			"CASE WHEN status = 'full' AND GREATEST(pizza_count - ?, 0) < capacity THEN 'active' ELSE status END",
			pizzaCount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Suffix("RETURNING " + joinColumns(slotColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "Release")
}

// SetStatus устанавливает статус слота (операторская ручка закрытия/открытия).
// При открытии слот с исчерпанной вместимостью сразу получает статус full.
func (r *Repository) SetStatus(ctx context.Context, slotID int64, status domain.SlotStatus) (*domain.TimeSlot, error) {
	if !domain.IsValidSlotStatus(status) {
		return nil, ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("status", squirrel.Expr(
			"CASE WHEN ?::text = 'active' AND pizza_count >= capacity THEN 'full' ELSE ? END",
			string(status), string(status))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Suffix("RETURNING " + joinColumns(slotColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "SetStatus")
}

// DeleteByDate удаляет все слоты на дату (административная перегенерация).
// Возвращает количество удалённых слотов.
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// AddOrderRef привязывает ссылку на заказ к слоту
func (r *Repository) AddOrderRef(ctx context.Context, ref *domain.OrderRef) (*domain.OrderRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_orders").
		Columns("slot_id", "order_ref", "pizza_count", "delivery_type", "email").
		Values(ref.SlotID, ref.OrderRef, ref.PizzaCount, ref.DeliveryType, ref.Email).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddOrderRef - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ref.ID, &createdAt)
	if err != nil {
		if isSerializationFailure(err) {
			return nil, fmt.Errorf("slot.repository: AddOrderRef - serialization conflict: %w", err)
		}
		return nil, fmt.Errorf("%w: AddOrderRef - execute insert: %v", ErrExecQuery, err)
	}

	ref.CreatedAt = createdAt.Time
	return ref, nil
}

// RemoveOrderRef удаляет ссылку на заказ из слота.
// Возвращает удалённую запись: её pizza_count нужен для освобождения вместимости.
func (r *Repository) RemoveOrderRef(ctx context.Context, slotID int64, orderRef string) (*domain.OrderRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_orders").
		Where(squirrel.Eq{"slot_id": slotID, "order_ref": orderRef}).
		Suffix("RETURNING id, slot_id, order_ref, pizza_count, delivery_type, email, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RemoveOrderRef - build delete query: %v", ErrBuildQuery, err)
	}

	var ref domain.OrderRef
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ref.ID,
		&ref.SlotID,
		&ref.OrderRef,
		&ref.PizzaCount,
		&ref.DeliveryType,
		&ref.Email,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderRefNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RemoveOrderRef - scan deleted ref: %v", ErrScanRow, err)
	}

	ref.CreatedAt = createdAt.Time
	return &ref, nil
}

// GetOrderRefs получает ссылки на заказы слота в порядке их добавления
func (r *Repository) GetOrderRefs(ctx context.Context, slotID int64) ([]*domain.OrderRef, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"order_ref",
		"pizza_count",
		"delivery_type",
		"email",
		"created_at",
	).
		From("slot_orders").
		Where(squirrel.Eq{"slot_id": slotID}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrderRefs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrderRefs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	refs := make([]*domain.OrderRef, 0)
	for rows.Next() {
		var ref domain.OrderRef
		var createdAt sql.NullTime

		err := rows.Scan(
			&ref.ID,
			&ref.SlotID,
			&ref.OrderRef,
			&ref.PizzaCount,
			&ref.DeliveryType,
			&ref.Email,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOrderRefs - scan row: %v", ErrScanRow, err)
		}

		ref.CreatedAt = createdAt.Time
		refs = append(refs, &ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOrderRefs - rows error: %v", ErrScanRow, err)
	}

	return refs, nil
}

// scanSlot сканирует один слот из строки результата
func (r *Repository) scanSlot(row *sql.Row, method string) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Capacity,
		&slot.CurrentOrders,
		&slot.PizzaCount,
		&slot.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		// Конфликт сериализации сохраняется в цепочке ошибок,
		// чтобы менеджер транзакций мог повторить транзакцию
		if isSerializationFailure(err) {
			return nil, fmt.Errorf("slot.repository: %s - serialization conflict: %w", method, err)
		}
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Capacity,
			&slot.CurrentOrders,
			&slot.PizzaCount,
			&slot.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
