package errs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the order workflow error family.
//
// None of these are retried automatically except ErrExternalServiceFailure,
// which the shipment tracking job retries on its next tick. All other kinds
// are surfaced to the caller as hard business failures.
var (
	ErrInvalidTransition        = errors.New("invalid transition")
	ErrUnauthorized             = errors.New("actor is not authorized")
	ErrPreconditionFailed       = errors.New("precondition failed")
	ErrPhaseCeilingExceeded     = errors.New("edit limit reached")
	ErrOutsideAppointmentWindow = errors.New("outside appointment window")
	ErrExternalServiceFailure   = errors.New("external service failure")
)

// InvalidTransitionError indicates that the requested status edge is not part
// of the transition graph. This is a programming or data error, never retried.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError indicates that the acting role is not permitted to drive
// the requested status edge.
type UnauthorizedError struct {
	Role string
	From string
	To   string
}

// NewUnauthorizedError creates an UnauthorizedError for the given role and edge.
func NewUnauthorizedError(role, from, to string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, From: from, To: to}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not drive %s -> %s", ErrUnauthorized, e.Role, e.From, e.To)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// PreconditionFailedError indicates that a business precondition for an
// otherwise legal transition is unmet. Condition names the specific check
// so callers can render an actor-facing message.
type PreconditionFailedError struct {
	Condition string
}

// NewPreconditionFailedError creates a PreconditionFailedError naming the unmet condition.
func NewPreconditionFailedError(condition string) *PreconditionFailedError {
	return &PreconditionFailedError{Condition: condition}
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Condition)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// PhaseCeilingExceededError indicates that the bounded revision loop has
// consumed all of its iterations. This is a terminal business condition
// requiring manual escalation, not a retry.
type PhaseCeilingExceededError struct {
	Kind    string
	Ceiling int
}

// NewPhaseCeilingExceededError creates a PhaseCeilingExceededError for the given revision kind.
func NewPhaseCeilingExceededError(kind string, ceiling int) *PhaseCeilingExceededError {
	return &PhaseCeilingExceededError{Kind: kind, Ceiling: ceiling}
}

func (e *PhaseCeilingExceededError) Error() string {
	return fmt.Sprintf("%s: %s revisions are limited to %d phases", ErrPhaseCeilingExceeded, e.Kind, e.Ceiling)
}

func (e *PhaseCeilingExceededError) Unwrap() error {
	return ErrPhaseCeilingExceeded
}

// OutsideAppointmentWindowError indicates that an on-site action was attempted
// outside its permitted time window. Carries the window bounds so the caller
// can tell the actor when the action is allowed.
type OutsideAppointmentWindowError struct {
	WindowStart time.Time
	WindowEnd   time.Time
}

// NewOutsideAppointmentWindowError creates an OutsideAppointmentWindowError with the permitted window.
func NewOutsideAppointmentWindowError(windowStart, windowEnd time.Time) *OutsideAppointmentWindowError {
	return &OutsideAppointmentWindowError{WindowStart: windowStart, WindowEnd: windowEnd}
}

func (e *OutsideAppointmentWindowError) Error() string {
	return fmt.Sprintf("%s: permitted from %s to %s",
		ErrOutsideAppointmentWindow,
		e.WindowStart.Format(time.RFC3339),
		e.WindowEnd.Format(time.RFC3339))
}

func (e *OutsideAppointmentWindowError) Unwrap() error {
	return ErrOutsideAppointmentWindow
}

// ExternalServiceFailureError indicates that a call to an external
// collaborator (carrier, persistence, media host) failed. Transient: the
// shipment tracking job swallows it and retries on the next tick.
type ExternalServiceFailureError struct {
	Service string
	Cause   error
}

// NewExternalServiceFailureError creates an ExternalServiceFailureError wrapping the failed call.
func NewExternalServiceFailureError(service string, cause error) *ExternalServiceFailureError {
	return &ExternalServiceFailureError{Service: service, Cause: cause}
}

func (e *ExternalServiceFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrExternalServiceFailure, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrExternalServiceFailure, e.Service)
}

func (e *ExternalServiceFailureError) Unwrap() error {
	return ErrExternalServiceFailure
}
