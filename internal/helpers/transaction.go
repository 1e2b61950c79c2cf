package helpers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// TxBeginner starts transactions; *pgxpool.Pool satisfies it
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTransaction executes fn within a database transaction, committing when
// fn returns nil and rolling back otherwise
func WithTransaction(ctx context.Context, db TxBeginner, fn TransactionFunc) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// Rollback after a successful commit returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// serializationFailure is the SQLSTATE Postgres returns when a serializable
// transaction loses a conflict
const serializationFailure = "40001"

// WithTransactionRetry runs WithTransaction again, with a short exponential
// backoff, while it fails on a serialization conflict. Other errors return
// immediately.
func WithTransactionRetry(ctx context.Context, db TxBeginner, maxRetries int, fn TransactionFunc) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 10 * time.Millisecond
	policy.MaxInterval = 500 * time.Millisecond

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := WithTransaction(ctx, db, fn)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != serializationFailure {
			return backoff.Permanent(err)
		}
		logger.Log.Warn("Transaction hit a serialization conflict",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(maxRetries)), ctx))
}
