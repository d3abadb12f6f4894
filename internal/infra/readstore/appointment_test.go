//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"appointment-system/internal/infra"
	"appointment-system/internal/infra/readstore"
	sqlc "appointment-system/internal/infra/sqlc/generated"
	"appointment-system/tests/common/builder"
	readstoremock "appointment-system/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func setup(t *testing.T) (*readstoremock.MockAppointmentReadQueries, *readstore.AppointmentReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockAppointmentReadQueries(ctrl)
	return q, readstore.NewAppointmentReadStore(q, &mockDBTX{}, nil)
}

func TestAppointmentReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q, store := setup(t)
		q.EXPECT().GetAppointment(ctx, gomock.Any(), int64(1)).Return(builder.NewAppointmentBuilder().BuildInfra(), nil)

		view, err := store.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, builder.NewAppointmentBuilder().BuildView(), view)
	})

	t.Run("not found", func(t *testing.T) {
		q, store := setup(t)
		q.EXPECT().GetAppointment(ctx, gomock.Any(), int64(1)).Return(sqlc.Appointment{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, 1)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAppointmentReadStore_List(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		searchTerm string
		wantSearch pgtype.Text
	}{
		{name: "no search term matches everything", searchTerm: "  ", wantSearch: pgtype.Text{}},
		{name: "search term is trimmed", searchTerm: " jane ", wantSearch: pgtype.Text{String: "jane", Valid: true}},
		{name: "wildcards are escaped", searchTerm: `50%_\`, wantSearch: pgtype.Text{String: `50\%\_\\`, Valid: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, store := setup(t)
			q.EXPECT().ListAppointments(ctx, gomock.Any(), sqlc.ListAppointmentsParams{
				Search: tc.wantSearch,
				Limit:  10,
				Offset: 20,
			}).Return([]sqlc.Appointment{builder.NewAppointmentBuilder().BuildInfra()}, nil)

			views, err := store.List(ctx, tc.searchTerm, 10, 20)
			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, "Jane Doe", views[0].PatientName)
		})
	}

	t.Run("database error", func(t *testing.T) {
		q, store := setup(t)
		q.EXPECT().ListAppointments(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.List(ctx, "", 10, 0)
		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAppointmentReadStore_Count(t *testing.T) {
	ctx := context.Background()
	q, store := setup(t)

	q.EXPECT().CountAppointments(ctx, gomock.Any(), pgtype.Text{String: "doe", Valid: true}).Return(int64(4), nil)
	n, err := store.Count(ctx, "doe")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	q.EXPECT().CountAppointments(ctx, gomock.Any(), pgtype.Text{}).Return(int64(0), errDBConnectionLost)
	_, err = store.Count(ctx, "")
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
