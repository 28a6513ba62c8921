package booking

import "fmt"

// ValidationError reports missing or malformed input. The caller can fix
// the request; it is never retried automatically.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ConflictError reports a booking request that collides with existing
// state, such as overlapping dates or an already-decided booking.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// NotFoundError reports a missing referenced resource, or a role mismatch
// on the referenced account.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// AuthorizationError reports an actor touching a resource they do not own.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: %s", e.Message)
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Message: msg}
}

// AuthenticationError reports a failed payment signature check. Treated as
// a potential tampering attempt and logged by the engine.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication: %s", e.Message)
}

func NewAuthenticationError(msg string) error {
	return &AuthenticationError{Message: msg}
}

// DependencyError wraps a backing store or gateway failure. Safe to retry
// with backoff at the caller's discretion.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func NewDependencyError(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}
