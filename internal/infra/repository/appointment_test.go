//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"appointment-system/internal/infra"
	"appointment-system/internal/infra/repository"
	sqlc "appointment-system/internal/infra/sqlc/generated"
	"appointment-system/tests/common/builder"
	repositorymock "appointment-system/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func setup(t *testing.T) (*repositorymock.MockAppointmentWriteQueries, *repository.AppointmentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockAppointmentWriteQueries(ctrl)
	return q, repository.NewAppointmentRepository(q, &mockDBTX{}, nil)
}

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the generated id", func(t *testing.T) {
		q, repo := setup(t)
		appt, err := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.Description = "" }).BuildDomain()
		require.NoError(t, err)

		q.EXPECT().CreateAppointment(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) (sqlc.Appointment, error) {
				assert.Equal(t, "Jane Doe", arg.PatientName)
				assert.False(t, arg.Description.Valid, "empty description is stored as NULL")
				assert.Equal(t, "Scheduled", arg.Status)
				assert.True(t, arg.CreatedAt.Valid)
				return builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = 21 }).BuildInfra(), nil
			})

		require.NoError(t, repo.Create(ctx, appt))
		assert.Equal(t, int64(21), appt.ID())
	})

	t.Run("check violation is classified", func(t *testing.T) {
		q, repo := setup(t)
		appt, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		q.EXPECT().CreateAppointment(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointment{}, &pgconn.PgError{Code: "23514"})

		err = repo.Create(ctx, appt)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
		assert.Zero(t, appt.ID())
	})
}

func TestAppointmentRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockAppointmentWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockAppointmentWriteQueries) {
				m.EXPECT().GetAppointment(ctx, gomock.Any(), int64(1)).Return(builder.NewAppointmentBuilder().BuildInfra(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *repositorymock.MockAppointmentWriteQueries) {
				m.EXPECT().GetAppointment(ctx, gomock.Any(), int64(1)).Return(sqlc.Appointment{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "database error",
			setupMock: func(m *repositorymock.MockAppointmentWriteQueries) {
				m.EXPECT().GetAppointment(ctx, gomock.Any(), int64(1)).Return(sqlc.Appointment{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, repo := setup(t)
			tc.setupMock(q)

			actual, err := repo.FindByID(ctx, 1)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), actual.ID())
			assert.Equal(t, "Annual check-up", actual.Description().String())
		})
	}
}

func TestAppointmentRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("locks through the bound connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		db := &mockDBTX{}
		repo := repository.NewAppointmentRepository(q, db, nil)
		q.EXPECT().GetAppointmentForUpdate(ctx, db, int64(1)).Return(builder.NewAppointmentBuilder().BuildInfra(), nil)

		actual, err := repo.FindByIDForUpdate(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), actual.ID())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().GetAppointmentForUpdate(ctx, gomock.Any(), int64(1)).Return(sqlc.Appointment{}, pgx.ErrNoRows)

		actual, err := repo.FindByIDForUpdate(ctx, 1)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, actual)
	})
}

func TestAppointmentRepository_Update(t *testing.T) {
	ctx := context.Background()
	q, repo := setup(t)
	appt := builder.NewAppointmentBuilder().BuildPersisted()

	q.EXPECT().UpdateAppointment(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (sqlc.Appointment, error) {
			assert.Equal(t, int64(1), arg.ID)
			assert.Equal(t, "Annual check-up", arg.Description.String)
			return sqlc.Appointment{}, nil
		})
	require.NoError(t, repo.Update(ctx, appt))

	q.EXPECT().UpdateAppointment(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointment{}, pgx.ErrNoRows)
	assert.True(t, infra.IsKind(repo.Update(ctx, appt), infra.KindNotFound))
}

func TestAppointmentRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted row", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().DeleteAppointment(ctx, gomock.Any(), int64(5)).Return(int64(1), nil)
		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("no affected rows is not found", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().DeleteAppointment(ctx, gomock.Any(), int64(5)).Return(int64(0), nil)
		assert.True(t, infra.IsKind(repo.Delete(ctx, 5), infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		q, repo := setup(t)
		q.EXPECT().DeleteAppointment(ctx, gomock.Any(), int64(5)).Return(int64(0), errDBConnectionLost)
		assert.True(t, infra.IsKind(repo.Delete(ctx, 5), infra.KindDBFailure))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
