package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PZA-SlotService/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

func (f *fakeTx) Commit() error   { f.commits++; return nil }
func (f *fakeTx) Rollback() error { f.rollbacks++; return nil }

type fakeBeginner struct {
	begins int
	last   *fakeTx
}

func (f *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begins++
	f.last = &fakeTx{}
	return f.last, nil
}

func serializationErr() error {
	// Ошибка драйвера, обёрнутая репозиторием с сохранением цепочки
	return fmt.Errorf("repository: serialization conflict: %w", &pq.Error{Code: "40001"})
}

func TestTransactionManager_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		err := m.Do(ctx, func(ctx context.Context) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, 1, db.begins)
		assert.Equal(t, 1, db.last.commits)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		fnErr := errors.New("boom")
		err := m.Do(ctx, func(ctx context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.Equal(t, 1, db.last.rollbacks)
		assert.Zero(t, db.last.commits)
	})

	t.Run("nested call reuses active transaction", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		txCtx := dbmetrics.WithTx(ctx, &fakeTx{})
		err := m.Do(txCtx, func(ctx context.Context) error { return nil })
		require.NoError(t, err)
		assert.Zero(t, db.begins)
	})
}

func TestTransactionManager_DoSerializable(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization conflicts", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		attempts := 0
		err := m.DoSerializable(ctx, func(ctx context.Context) error {
			attempts++
			if attempts < 3 {
				return serializationErr()
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 3, db.begins)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		err := m.DoSerializable(ctx, func(ctx context.Context) error {
			return serializationErr()
		})

		var pqErr *pq.Error
		require.ErrorAs(t, err, &pqErr)
		assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
		assert.Equal(t, maxSerializableRetries, db.begins)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		fnErr := errors.New("constraint violation")
		err := m.DoSerializable(ctx, func(ctx context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.Equal(t, 1, db.begins)
	})
}
