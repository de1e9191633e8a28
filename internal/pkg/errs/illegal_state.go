package errs

import (
	"errors"
	"fmt"
)

// ErrIllegalState is the sentinel wrapped by every IllegalStateError.
var ErrIllegalState = errors.New("illegal state")

// IllegalStateError reports that an object exists but is in a state that forbids the
// requested operation, e.g. a lifecycle transition from the wrong status.
type IllegalStateError struct {
	Subject string
	Cause   error
}

// NewIllegalStateError creates an error for the given subject.
func NewIllegalStateError(subject string) *IllegalStateError {
	return &IllegalStateError{
		Subject: subject,
	}
}

// NewIllegalStateErrorWithCause creates an IllegalStateError explaining the violated precondition.
func NewIllegalStateErrorWithCause(subject string, cause error) *IllegalStateError {
	return &IllegalStateError{
		Subject: subject,
		Cause:   cause,
	}
}

func (e *IllegalStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrIllegalState, e.Subject, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrIllegalState, e.Subject)
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}
