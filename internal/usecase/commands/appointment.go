package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"appointment-system/internal/domain/appointment"
	"appointment-system/internal/pkg/clock"
	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/pkg/result"
	"appointment-system/internal/usecase/pipeline"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	FindByID(ctx context.Context, id int64) (*appointment.Appointment, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*appointment.Appointment, error)
	Update(ctx context.Context, appt *appointment.Appointment) error
	Delete(ctx context.Context, id int64) error
}

// UnitOfWork runs fn in one transaction with a repository bound to it.
// Returning an error from fn rolls the transaction back.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, repo AppointmentRepository) error) error
}

// AppointmentInput is the payload shared by create and update.
type AppointmentInput struct {
	PatientName     string
	AppointmentDate *time.Time
	Description     string
	Status          string
}

func (in AppointmentInput) fields() appointment.Fields {
	f := appointment.Fields{
		PatientName: in.PatientName,
		Description: in.Description,
		Status:      in.Status,
	}
	if in.AppointmentDate != nil {
		f.AppointmentDate = *in.AppointmentDate
	}
	return f
}

type CreateAppointmentCommand struct {
	AppointmentInput
}

type UpdateAppointmentCommand struct {
	ID int64
	AppointmentInput
}

type DeleteAppointmentCommand struct {
	ID int64
}

type AppointmentCommands interface {
	Create(ctx context.Context, cmd CreateAppointmentCommand) result.Result[*appointment.Appointment]
	Update(ctx context.Context, cmd UpdateAppointmentCommand) result.Result[*appointment.Appointment]
	Delete(ctx context.Context, cmd DeleteAppointmentCommand) result.Result[int64]
}

type appointmentCommandsImpl struct {
	create pipeline.Handler[CreateAppointmentCommand, *appointment.Appointment]
	update pipeline.Handler[UpdateAppointmentCommand, *appointment.Appointment]
	delete pipeline.Handler[DeleteAppointmentCommand, int64]
}

func NewAppointmentCommands(repo AppointmentRepository, uow UnitOfWork, clk clock.Clock, logger *slog.Logger) AppointmentCommands {
	h := &appointmentHandlers{repo: repo, uow: uow, clock: clk}
	return &appointmentCommandsImpl{
		create: pipeline.WithValidation(logger, "CreateAppointment", CreateAppointmentRules(), h.create),
		update: pipeline.WithValidation(logger, "UpdateAppointment", UpdateAppointmentRules(), h.update),
		delete: pipeline.WithValidation(logger, "DeleteAppointment", DeleteAppointmentRules(), h.delete),
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, cmd CreateAppointmentCommand) result.Result[*appointment.Appointment] {
	return c.create(ctx, cmd)
}

func (c *appointmentCommandsImpl) Update(ctx context.Context, cmd UpdateAppointmentCommand) result.Result[*appointment.Appointment] {
	return c.update(ctx, cmd)
}

func (c *appointmentCommandsImpl) Delete(ctx context.Context, cmd DeleteAppointmentCommand) result.Result[int64] {
	return c.delete(ctx, cmd)
}

type appointmentHandlers struct {
	repo  AppointmentRepository
	uow   UnitOfWork
	clock clock.Clock
}

func (h *appointmentHandlers) create(ctx context.Context, cmd CreateAppointmentCommand) result.Result[*appointment.Appointment] {
	appt, err := appointment.NewAppointment(cmd.fields(), h.clock.Now())
	if err != nil {
		return result.Failure[*appointment.Appointment](domainViolation(err))
	}
	if err := h.repo.Create(ctx, appt); err != nil {
		return result.Failure[*appointment.Appointment](errs.Wrap(err, "create appointment"))
	}
	return result.Success(appt)
}

func (h *appointmentHandlers) update(ctx context.Context, cmd UpdateAppointmentCommand) result.Result[*appointment.Appointment] {
	var updated *appointment.Appointment
	err := h.uow.Within(ctx, func(ctx context.Context, repo AppointmentRepository) error {
		appt, err := repo.FindByIDForUpdate(ctx, cmd.ID)
		if err != nil {
			return errs.Wrapf(err, "load appointment %d", cmd.ID)
		}
		if err := appt.Replace(cmd.fields(), h.clock.Now()); err != nil {
			return domainViolation(err)
		}
		if err := repo.Update(ctx, appt); err != nil {
			return errs.Wrapf(err, "update appointment %d", cmd.ID)
		}
		updated = appt
		return nil
	})
	if err != nil {
		return result.Failure[*appointment.Appointment](err)
	}
	return result.Success(updated)
}

func (h *appointmentHandlers) delete(ctx context.Context, cmd DeleteAppointmentCommand) result.Result[int64] {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return result.Failure[int64](errs.Wrapf(err, "delete appointment %d", cmd.ID))
	}
	return result.Success(cmd.ID)
}

// domainViolation turns an invariant error raised by the entity into a field-level failure.
func domainViolation(err error) error {
	field := ""
	switch {
	case errors.Is(err, appointment.ErrEmptyPatientName), errors.Is(err, appointment.ErrPatientNameTooLong):
		field = FieldPatientName
	case errors.Is(err, appointment.ErrMissingDate):
		field = FieldAppointmentDate
	case errors.Is(err, appointment.ErrDescriptionTooLong):
		field = FieldDescription
	case errors.Is(err, appointment.ErrInvalidStatus):
		field = FieldStatus
	default:
		return err
	}
	v := errs.NewValidationError()
	v.Add(field, err.Error())
	return v
}
