package request

import (
	"strconv"
	"time"

	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/usecase/commands"
	"appointment-system/internal/usecase/queries"
)

// Field rules live in the command rule sets, not in binding tags.
type AppointmentPayload struct {
	PatientName     string     `json:"patientName"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
}

type CreateAppointmentRequest AppointmentPayload

type UpdateAppointmentRequest AppointmentPayload

func (p AppointmentPayload) toInput() commands.AppointmentInput {
	in := commands.AppointmentInput{
		PatientName:     p.PatientName,
		AppointmentDate: p.AppointmentDate,
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Status != nil {
		in.Status = *p.Status
	}
	return in
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentCommand {
	return commands.CreateAppointmentCommand{AppointmentInput: AppointmentPayload(r).toInput()}
}

func (r UpdateAppointmentRequest) ToCommand(id int64) commands.UpdateAppointmentCommand {
	return commands.UpdateAppointmentCommand{ID: id, AppointmentInput: AppointmentPayload(r).toInput()}
}

type ListAppointmentsQuery struct {
	SearchTerm string
	PageNumber string
	PageSize   string
}

func (q ListAppointmentsQuery) ToFilter() (queries.ListFilter, *errs.ValidationError) {
	verr := errs.NewValidationError()
	f := queries.ListFilter{SearchTerm: q.SearchTerm}

	if q.PageSize != "" {
		n, err := strconv.Atoi(q.PageSize)
		if err != nil || n < 1 || n > queries.MaxPageSize {
			verr.Add("pageSize", "pageSize must be between 1 and "+strconv.Itoa(queries.MaxPageSize))
		}
		f.PageSize = n
	}
	if q.PageNumber != "" {
		n, err := strconv.Atoi(q.PageNumber)
		switch {
		case err != nil || n < 1:
			verr.Add(queries.FieldPageNumber, "pageNumber must be a positive integer")
		case n > queries.MaxPageNumber(f.PageSize):
			verr.Add(queries.FieldPageNumber, "pageNumber must not exceed "+strconv.Itoa(queries.MaxPageNumber(f.PageSize)))
		}
		f.PageNumber = n
	}

	if !verr.Empty() {
		return queries.ListFilter{}, verr
	}
	return f, nil
}

// ParseID accepts positive decimal identifiers only.
func ParseID(raw string) (int64, *errs.ValidationError) {
	verr := errs.NewValidationError()
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr.Add(commands.FieldID, "id must be a positive integer")
		return 0, verr
	}
	commands.ValidateID(id, verr)
	if !verr.Empty() {
		return 0, verr
	}
	return id, nil
}
