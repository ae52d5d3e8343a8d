package errs

import "errors"

// Error classes shared across layers. Sentinels are marked with one of these
// and checked with Is.
var (
	// Validation errors: rejected before any state mutation
	ErrValidation = errors.New("validation failed")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Persistence errors
	ErrCapacityExceeded = errors.New("storage capacity exceeded")
	ErrStorageFailure   = errors.New("storage operation failed")
)
