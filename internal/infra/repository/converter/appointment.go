package converter

import (
	"appointment-system/internal/domain/appointment"
	sqlc "appointment-system/internal/infra/sqlc/generated"
	"appointment-system/internal/pkg/pgconv"
	"appointment-system/internal/usecase/queries"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		PatientName:     a.PatientName().String(),
		AppointmentDate: pgconv.TimeToPgtype(a.AppointmentDate()),
		Description:     pgconv.OptionalStringToPgtype(a.Description().String()),
		Status:          a.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	return sqlc.UpdateAppointmentParams{
		ID:              a.ID(),
		PatientName:     a.PatientName().String(),
		AppointmentDate: pgconv.TimeToPgtype(a.AppointmentDate()),
		Description:     pgconv.OptionalStringToPgtype(a.Description().String()),
		Status:          a.Status().String(),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentFromRow(row sqlc.Appointment) *appointment.Appointment {
	return appointment.Reconstruct(
		row.ID,
		row.PatientName,
		pgconv.TimeFromPgtype(row.AppointmentDate),
		pgconv.StringFromPgtype(row.Description),
		appointment.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AppointmentViewFromRow(row sqlc.Appointment) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              row.ID,
		PatientName:     row.PatientName,
		AppointmentDate: pgconv.TimeFromPgtype(row.AppointmentDate),
		Description:     pgconv.StringFromPgtype(row.Description),
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
