package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealpoint/billing-api/internal/logger"
	"github.com/sealpoint/billing-api/internal/types/business"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// customerLockNamespace is the first half of the advisory lock key. The second
// half is the customer id, so two customers never contend with each other.
const customerLockNamespace = 0x5B1C

// lockTimeout bounds how long a writer waits for another writer on the same
// customer before giving up with business.ErrLockTimeout.
const lockTimeout = "10s"

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes a function within a database transaction.
// It automatically handles commit/rollback based on the error returned by the function.
// If the function returns an error, the transaction is rolled back.
// If the function returns nil, the transaction is committed.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure we always attempt to finalize the transaction
	defer func() {
		// If transaction is already closed (committed), rollback will return ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
			)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithCustomerLock executes fn inside a transaction that holds the exclusive
// advisory lock for the given customer. The lock is coupled to the transaction
// and is released automatically on commit or rollback. All write paths that
// touch a customer's billing state must go through here (or through
// TryCustomerLock); ordering between different customers is unconstrained.
func WithCustomerLock(ctx context.Context, pool *pgxpool.Pool, customerID int32, fn TransactionFunc) error {
	if customerID <= 0 {
		return &business.ValidationError{
			Code:    "INVALID_CUSTOMER_ID",
			Message: fmt.Sprintf("customer id must be positive, got %d", customerID),
		}
	}

	return WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", lockTimeout)); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}

		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", customerLockNamespace, customerID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "55P03" { // lock_not_available
				return business.ErrLockTimeout
			}
			return fmt.Errorf("failed to acquire customer lock: %w", err)
		}

		return fn(tx)
	})
}

// TryCustomerLock is the non-blocking variant of WithCustomerLock. If the lock
// is held elsewhere it returns (false, nil) without invoking fn.
func TryCustomerLock(ctx context.Context, pool *pgxpool.Pool, customerID int32, fn TransactionFunc) (bool, error) {
	if customerID <= 0 {
		return false, &business.ValidationError{
			Code:    "INVALID_CUSTOMER_ID",
			Message: fmt.Sprintf("customer id must be positive, got %d", customerID),
		}
	}

	acquired := false
	err := WithTransaction(ctx, pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, "SELECT pg_try_advisory_xact_lock($1, $2)", customerLockNamespace, customerID).Scan(&acquired); err != nil {
			return fmt.Errorf("failed to try customer lock: %w", err)
		}
		if !acquired {
			return nil
		}
		return fn(tx)
	})
	return acquired, err
}

// WithTransactionRetry executes a function within a database transaction with retry logic.
// It will retry the transaction up to maxRetries times if it encounters a serialization error.
func WithTransactionRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "40001" { // serialization_failure
			if attempt < maxRetries {
				logger.Log.Warn("Transaction failed due to serialization error, retrying",
					zap.Int("attempt", attempt+1),
					zap.Int("max_retries", maxRetries),
					zap.Error(err),
				)
				continue
			}
		}

		break
	}

	return err
}
