//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"

	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/usecase/commands"
	"appointment-system/tests/common/builder"
	repositorymock "appointment-system/tests/mock/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBeginFailed = errors.New("connection refused")

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs        []*fakeTx
	beginErr   error
	commitErrs []error
	options    []pgx.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, options pgx.TxOptions) (pgx.Tx, error) {
	b.options = append(b.options, options)
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	if n := len(b.txs); n < len(b.commitErrs) {
		tx.commitErr = b.commitErrs[n]
	}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func newTestUoW(t *testing.T, db TxBeginner) (*repositorymock.MockAppointmentWriteQueries, *PostgresUoW) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockAppointmentWriteQueries(ctrl)
	instant := func() backoff.BackOff { return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxTxRetries) }
	return q, newPostgresUoW(db, q, nil, instant)
}

func TestPostgresUoW_Within(t *testing.T) {
	ctx := context.Background()
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	t.Run("commits and binds the repository to the transaction", func(t *testing.T) {
		db := &fakeBeginner{}
		q, u := newTestUoW(t, db)
		q.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), int64(1)).Return(builder.NewAppointmentBuilder().BuildInfra(), nil)

		err := u.Within(ctx, func(ctx context.Context, repo commands.AppointmentRepository) error {
			_, err := repo.FindByIDForUpdate(ctx, 1)
			return err
		})

		require.NoError(t, err)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
		assert.Equal(t, pgx.ReadCommitted, db.options[0].IsoLevel)
	})

	t.Run("business error rolls back without retry", func(t *testing.T) {
		db := &fakeBeginner{}
		_, u := newTestUoW(t, db)

		err := u.Within(ctx, func(context.Context, commands.AppointmentRepository) error {
			return errs.ErrNotFound
		})

		assert.ErrorIs(t, err, errs.ErrNotFound)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("serialization failure is replayed in a fresh transaction", func(t *testing.T) {
		db := &fakeBeginner{}
		_, u := newTestUoW(t, db)
		calls := 0

		err := u.Within(ctx, func(context.Context, commands.AppointmentRepository) error {
			calls++
			if calls < 3 {
				return serialization
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		require.Len(t, db.txs, 3)
		assert.True(t, db.txs[0].rolledBack)
		assert.True(t, db.txs[1].rolledBack)
		assert.True(t, db.txs[2].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db := &fakeBeginner{}
		_, u := newTestUoW(t, db)

		err := u.Within(ctx, func(context.Context, commands.AppointmentRepository) error {
			return deadlock
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errMaxRetriesExceeded))
		assert.Len(t, db.txs, maxTxRetries+1)
	})

	t.Run("retryable commit failure is retried", func(t *testing.T) {
		db := &fakeBeginner{commitErrs: []error{serialization}}
		_, u := newTestUoW(t, db)

		err := u.Within(ctx, func(context.Context, commands.AppointmentRepository) error { return nil })

		require.NoError(t, err)
		require.Len(t, db.txs, 2)
		assert.True(t, db.txs[0].rolledBack)
		assert.True(t, db.txs[1].committed)
	})

	t.Run("begin failure is not retried", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errBeginFailed}
		_, u := newTestUoW(t, db)

		err := u.Within(ctx, func(context.Context, commands.AppointmentRepository) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})

		assert.True(t, errs.Is(err, errTransactionBegin))
		assert.Len(t, db.options, 1)
	})
}

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: "40P01"}, "update appointment"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errBeginFailed, false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, isRetryableError(tc.err))
		})
	}
}
