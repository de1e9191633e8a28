package errs

import "errors"

// Kind is the category of a rejected operation.
type Kind int

const (
	// KindUnknown covers infrastructure and unexpected failures.
	KindUnknown Kind = iota
	// KindInvalidArgument is a malformed or policy-violating input.
	KindInvalidArgument
	// KindNotFound is an identifier that does not resolve.
	KindNotFound
	// KindFailedPrecondition is an existing object in a state that forbids the operation.
	KindFailedPrecondition
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// KindOf classifies err. A joined error holding several kinds resolves in the order
// invalid argument, not found, failed precondition.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrIllegalState):
		return KindFailedPrecondition
	default:
		return KindUnknown
	}
}
