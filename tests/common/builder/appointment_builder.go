//go:build unit || e2e

package builder

import (
	"time"

	"appointment-system/internal/domain/appointment"
	reqdto "appointment-system/internal/handler/dto/request"
	sqlc "appointment-system/internal/infra/sqlc/generated"
	"appointment-system/internal/usecase/commands"
	"appointment-system/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentBuilder struct {
	ID              int64
	PatientName     string
	AppointmentDate time.Time
	Description     string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:              1,
		PatientName:     "Jane Doe",
		AppointmentDate: now.Add(72 * time.Hour),
		Description:     "Annual check-up",
		Status:          string(appointment.StatusScheduled),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(b.fields(), b.CreatedAt)
}

func (b *AppointmentBuilder) BuildPersisted() *appointment.Appointment {
	return appointment.Reconstruct(b.ID, b.PatientName, b.AppointmentDate, b.Description,
		appointment.Status(b.Status), b.CreatedAt, b.UpdatedAt)
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointment {
	return sqlc.Appointment{
		ID:              b.ID,
		PatientName:     b.PatientName,
		AppointmentDate: pgtype.Timestamptz{Time: b.AppointmentDate, Valid: true},
		Description:     pgtype.Text{String: b.Description, Valid: b.Description != ""},
		Status:          b.Status,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              b.ID,
		PatientName:     b.PatientName,
		AppointmentDate: b.AppointmentDate,
		Description:     b.Description,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildInput() commands.AppointmentInput {
	date := b.AppointmentDate
	return commands.AppointmentInput{
		PatientName:     b.PatientName,
		AppointmentDate: &date,
		Description:     b.Description,
		Status:          b.Status,
	}
}

func (b *AppointmentBuilder) BuildCreateCommand() commands.CreateAppointmentCommand {
	return commands.CreateAppointmentCommand{AppointmentInput: b.BuildInput()}
}

func (b *AppointmentBuilder) BuildUpdateCommand() commands.UpdateAppointmentCommand {
	return commands.UpdateAppointmentCommand{ID: b.ID, AppointmentInput: b.BuildInput()}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	date := b.AppointmentDate
	desc := b.Description
	status := b.Status
	return reqdto.CreateAppointmentRequest{
		PatientName:     b.PatientName,
		AppointmentDate: &date,
		Description:     &desc,
		Status:          &status,
	}
}

func (b *AppointmentBuilder) BuildUpdateRequestDTO() reqdto.UpdateAppointmentRequest {
	return reqdto.UpdateAppointmentRequest(b.BuildCreateRequestDTO())
}

func (b *AppointmentBuilder) fields() appointment.Fields {
	return appointment.Fields{
		PatientName:     b.PatientName,
		AppointmentDate: b.AppointmentDate,
		Description:     b.Description,
		Status:          b.Status,
	}
}
