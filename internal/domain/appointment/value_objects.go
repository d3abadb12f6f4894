package appointment

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxPatientNameLength = 200
	MaxDescriptionLength = 500
)

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// StatusOptions lists the accepted statuses in display order.
func StatusOptions() []string {
	return []string{string(StatusScheduled), string(StatusCompleted), string(StatusCancelled)}
}

// ParseStatus defaults an empty value to Scheduled.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case "":
		return StatusScheduled, nil
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

type PatientName struct {
	value string
}

func NewPatientName(s string) (PatientName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return PatientName{}, ErrEmptyPatientName
	}
	if utf8.RuneCountInString(t) > MaxPatientNameLength {
		return PatientName{}, ErrPatientNameTooLong
	}
	return PatientName{value: t}, nil
}

func (p PatientName) String() string { return p.value }

type Description struct {
	text string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{text: t}, nil
}

func (d Description) String() string { return d.text }
func (d Description) IsEmpty() bool  { return d.text == "" }
