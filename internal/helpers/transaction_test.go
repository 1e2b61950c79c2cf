package helpers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/protectedpay/protectedpay-api/internal/helpers"
	"github.com/stretchr/testify/assert"
)

// fakeTx records commit and rollback calls; other pgx.Tx methods are not used
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
	err error
}

func (f *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.err != nil {
		return nil, f.err
	}
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db := &fakeBeginner{}
		err := helpers.WithTransaction(ctx, db, func(tx pgx.Tx) error { return nil })
		assert.NoError(t, err)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := &fakeBeginner{}
		err := helpers.WithTransaction(ctx, db, func(tx pgx.Tx) error { return errors.New("boom") })
		assert.ErrorContains(t, err, "transaction failed: boom")
		assert.False(t, db.txs[0].committed)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("begin failure", func(t *testing.T) {
		db := &fakeBeginner{err: errors.New("no connection")}
		err := helpers.WithTransaction(ctx, db, func(tx pgx.Tx) error { return nil })
		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}

func TestWithTransactionRetry(t *testing.T) {
	db := &fakeBeginner{}
	calls := 0
	err := helpers.WithTransactionRetry(context.Background(), db, 2, func(tx pgx.Tx) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, db.txs, 3)
}

func TestWithTransactionRetry_StopsOnOtherErrors(t *testing.T) {
	db := &fakeBeginner{}
	calls := 0
	err := helpers.WithTransactionRetry(context.Background(), db, 3, func(tx pgx.Tx) error {
		calls++
		return &pgconn.PgError{Code: "23505"}
	})

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, 1, calls)
}

func TestWithTransactionRetry_GivesUp(t *testing.T) {
	db := &fakeBeginner{}
	calls := 0
	err := helpers.WithTransactionRetry(context.Background(), db, 1, func(tx pgx.Tx) error {
		calls++
		return &pgconn.PgError{Code: "40001"}
	})

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}
