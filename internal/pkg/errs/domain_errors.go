package errs

import "errors"

// Sentinel kinds shared by the usecase and handler layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
