package readstore

import (
	"context"
	"log/slog"

	"appointment-system/internal/infra"
	"appointment-system/internal/infra/repository/converter"
	sqlc "appointment-system/internal/infra/sqlc/generated"
	"appointment-system/internal/pkg/pgconv"
	"appointment-system/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadQueries interface {
	GetAppointment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointment, error)
	ListAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsParams) ([]sqlc.Appointment, error)
	CountAppointments(ctx context.Context, db sqlc.DBTX, search pgtype.Text) (int64, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX, logger *slog.Logger) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to get appointment view by id", err)
	}
	return converter.AppointmentViewFromRow(row), nil
}

func (r *AppointmentReadStore) List(ctx context.Context, searchTerm string, limit, offset int) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentsParams{
		Search: pgconv.SearchPattern(searchTerm),
		Limit:  pgconv.IntToInt32(limit),
		Offset: pgconv.IntToInt32(offset),
	}
	rows, err := r.queries.ListAppointments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list appointments", err)
	}
	views := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		views[i] = converter.AppointmentViewFromRow(row)
	}
	return views, nil
}

func (r *AppointmentReadStore) Count(ctx context.Context, searchTerm string) (int64, error) {
	n, err := r.queries.CountAppointments(ctx, r.db, pgconv.SearchPattern(searchTerm))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, "failed to count appointments", err)
	}
	return n, nil
}
