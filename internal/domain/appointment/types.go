package appointment

import "errors"

var (
	ErrEmptyPatientName   = errors.New("patient name cannot be empty")
	ErrPatientNameTooLong = errors.New("patient name exceeds maximum length")
	ErrMissingDate        = errors.New("appointment date is required")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidStatus      = errors.New("status must be one of Scheduled, Completed, Cancelled")
	ErrIdentityReassigned = errors.New("appointment identity cannot be changed")
)
