// Package errs provides standardized error types for the kitchenpos application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a business rule
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced object cannot be found
//   - IllegalStateError: an object exists but its state forbids the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors are grouped into three kinds (see Kind): invalid argument, not found and
// failed precondition. KindOf classifies any error, including wrapped and joined ones,
// so transport adapters can map failures to responses without knowing concrete types.
package errs
