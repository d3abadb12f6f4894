package commands

import (
	"time"

	"appointment-system/internal/domain/appointment"
	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/usecase/pipeline"
)

// Field names match the JSON payload so violations can be shown next to the input.
const (
	FieldID              = "id"
	FieldPatientName     = "patientName"
	FieldAppointmentDate = "appointmentDate"
	FieldDescription     = "description"
	FieldStatus          = "status"
)

func inputRules[C any](in func(C) AppointmentInput) pipeline.RuleSet[C] {
	return pipeline.NewRuleSet(
		pipeline.Required(FieldPatientName, func(c C) string { return in(c).PatientName }),
		pipeline.MaxLength(FieldPatientName, appointment.MaxPatientNameLength, func(c C) string { return in(c).PatientName }),
		pipeline.RequiredTime(FieldAppointmentDate, func(c C) *time.Time { return in(c).AppointmentDate }),
		pipeline.MaxLength(FieldDescription, appointment.MaxDescriptionLength, func(c C) string { return in(c).Description }),
		pipeline.OneOf(FieldStatus, appointment.StatusOptions(), func(c C) string { return in(c).Status }),
	)
}

// ValidateID is the single owner of the positive id rule. The HTTP layer
// calls it for every route so a non-positive id is a 400 before any lookup.
func ValidateID(id int64, v *errs.ValidationError) {
	if id <= 0 {
		v.Add(FieldID, "id must be a positive integer")
	}
}

func positiveID[C any](id func(C) int64) pipeline.Rule[C] {
	return func(c C, v *errs.ValidationError) {
		ValidateID(id(c), v)
	}
}

func CreateAppointmentRules() pipeline.RuleSet[CreateAppointmentCommand] {
	return inputRules(func(c CreateAppointmentCommand) AppointmentInput { return c.AppointmentInput })
}

func UpdateAppointmentRules() pipeline.RuleSet[UpdateAppointmentCommand] {
	return inputRules(func(c UpdateAppointmentCommand) AppointmentInput { return c.AppointmentInput }).
		With(positiveID(func(c UpdateAppointmentCommand) int64 { return c.ID }))
}

func DeleteAppointmentRules() pipeline.RuleSet[DeleteAppointmentCommand] {
	return pipeline.NewRuleSet(positiveID(func(c DeleteAppointmentCommand) int64 { return c.ID }))
}
