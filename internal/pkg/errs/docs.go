// Package errs provides standardized error types for the greenspace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//
// Generic validation errors used by value objects and repositories:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Workflow errors raised by the order lifecycle:
//   - InvalidTransitionError: The requested status edge does not exist
//   - UnauthorizedError: The acting role may not drive the requested edge
//   - PreconditionFailedError: A business precondition for the edge is unmet
//   - PhaseCeilingExceededError: The revision iteration limit was hit
//   - OutsideAppointmentWindowError: A time-gated on-site action was attempted
//     outside its permitted window
//   - ExternalServiceFailureError: A carrier or persistence call failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application. Callers classify errors with
// errors.Is against the sentinels and extract details with errors.As.
package errs
