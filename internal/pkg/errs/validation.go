package errs

import cr "github.com/cockroachdb/errors"

// classError is a sentinel with its own identity that also matches its class
// (ErrValidation, ErrNotFound, ErrCapacityExceeded) through Is.
type classError struct {
	msg   string
	class error
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Is(target error) bool { return target == e.class }

// NewValidation creates a sentinel that also matches ErrValidation.
func NewValidation(msg string) error {
	return &classError{msg: msg, class: ErrValidation}
}

// NewNotFound creates a sentinel that also matches ErrNotFound.
func NewNotFound(msg string) error {
	return &classError{msg: msg, class: ErrNotFound}
}

// NewCapacity creates a sentinel that also matches ErrCapacityExceeded.
func NewCapacity(msg string) error {
	return &classError{msg: msg, class: ErrCapacityExceeded}
}

// WithCause keeps err as the visible error and attaches cause for %+v output
// only, so Is checks see err's chain alone.
func WithCause(err, cause error) error {
	if err == nil || cause == nil {
		return err
	}
	return cr.WithSecondaryError(err, cause)
}
