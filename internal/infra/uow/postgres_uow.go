package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"appointment-system/internal/infra/repository"
	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries  = 3
	baseTxBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is the part of pgxpool.Pool the unit of work needs.
type TxBeginner interface {
	BeginTx(ctx context.Context, options pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	db      TxBeginner
	queries repository.AppointmentWriteQueries
	logger  *slog.Logger
	policy  func() backoff.BackOff
}

func NewPostgresUoW(pool *pgxpool.Pool, queries repository.AppointmentWriteQueries, logger *slog.Logger) *PostgresUoW {
	return newPostgresUoW(pool, queries, logger, defaultPolicy)
}

func newPostgresUoW(db TxBeginner, queries repository.AppointmentWriteQueries, logger *slog.Logger, policy func() backoff.BackOff) *PostgresUoW {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUoW{db: db, queries: queries, logger: logger, policy: policy}
}

func defaultPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = baseTxBackoff
	b.RandomizationFactor = 0.2
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, maxTxRetries)
}

// Within runs fn under ReadCommitted. Serialization failures and deadlocks
// replay fn in a fresh transaction.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, repo commands.AppointmentRepository) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(u.policy(), ctx), notify)
	if err != nil && isRetryableError(err) {
		u.logger.Error("transaction failed after max retries",
			"attempts", attempt,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// runOnce keeps defer out of the retry loop so each attempt releases its connection.
func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, repo commands.AppointmentRepository) error) error {
	tx, err := u.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	repo := repository.NewAppointmentRepository(u.queries, tx, u.logger)
	err = fn(ctx, repo)
	if err == nil {
		if err = tx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
