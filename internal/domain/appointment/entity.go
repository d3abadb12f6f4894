package appointment

import (
	"time"
)

type Appointment struct {
	id              int64
	patientName     PatientName
	appointmentDate time.Time
	description     Description
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// Fields carries the mutable part of an appointment. Updates replace all of it.
type Fields struct {
	PatientName     string
	AppointmentDate time.Time
	Description     string
	Status          string
}

func newFields(f Fields) (PatientName, time.Time, Description, Status, error) {
	name, err := NewPatientName(f.PatientName)
	if err != nil {
		return PatientName{}, time.Time{}, Description{}, "", err
	}
	if f.AppointmentDate.IsZero() {
		return PatientName{}, time.Time{}, Description{}, "", ErrMissingDate
	}
	desc, err := NewDescription(f.Description)
	if err != nil {
		return PatientName{}, time.Time{}, Description{}, "", err
	}
	status, err := ParseStatus(f.Status)
	if err != nil {
		return PatientName{}, time.Time{}, Description{}, "", err
	}
	return name, f.AppointmentDate.UTC(), desc, status, nil
}

// NewAppointment builds an unsaved appointment; its identity is assigned by the store.
func NewAppointment(f Fields, now time.Time) (*Appointment, error) {
	name, date, desc, status, err := newFields(f)
	if err != nil {
		return nil, err
	}
	return &Appointment{
		patientName:     name,
		appointmentDate: date,
		description:     desc,
		status:          status,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rehydrates a persisted appointment without re-validating it.
func Reconstruct(id int64, name string, date time.Time, description string, status Status, createdAt, updatedAt time.Time) *Appointment {
	return &Appointment{
		id:              id,
		patientName:     PatientName{value: name},
		appointmentDate: date,
		description:     Description{text: description},
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Replace overwrites every mutable field; an empty status resets to Scheduled.
func (a *Appointment) Replace(f Fields, now time.Time) error {
	name, date, desc, status, err := newFields(f)
	if err != nil {
		return err
	}
	a.patientName = name
	a.appointmentDate = date
	a.description = desc
	a.status = status
	a.updatedAt = now
	return nil
}

// AssignID is called once by the store after insert.
func (a *Appointment) AssignID(id int64) error {
	if a.id != 0 && a.id != id {
		return ErrIdentityReassigned
	}
	a.id = id
	return nil
}

func (a *Appointment) ID() int64                  { return a.id }
func (a *Appointment) PatientName() PatientName   { return a.patientName }
func (a *Appointment) AppointmentDate() time.Time { return a.appointmentDate }
func (a *Appointment) Description() Description   { return a.description }
func (a *Appointment) Status() Status             { return a.status }
func (a *Appointment) CreatedAt() time.Time       { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time       { return a.updatedAt }
