package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks calls rejected before reaching the store.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError carries the reason a flight was rejected. Error returns the
// reason verbatim so callers can show it as is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func InvalidArgument(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
