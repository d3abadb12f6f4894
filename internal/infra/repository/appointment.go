package repository

import (
	"context"
	"log/slog"

	"appointment-system/internal/domain/appointment"
	"appointment-system/internal/infra"
	"appointment-system/internal/infra/repository/converter"
	sqlc "appointment-system/internal/infra/sqlc/generated"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (sqlc.Appointment, error)
	GetAppointment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointment, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointment, error)
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (sqlc.Appointment, error)
	DeleteAppointment(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX, logger *slog.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	row, err := r.queries.CreateAppointment(ctx, r.db, converter.AppointmentToCreateParams(appt))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create appointment", err)
	}
	if err := appt.AssignID(row.ID); err != nil {
		return infra.WrapRepoErr(r.logger, "created appointment returned a conflicting id", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to get appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, id int64) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to lock appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	if _, err := r.queries.UpdateAppointment(ctx, r.db, converter.AppointmentToUpdateParams(appt)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteAppointment(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete appointment", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}
