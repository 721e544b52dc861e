package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Callers cannot tell the two cases apart.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates a bearer token that is missing, malformed,
	// expired, revoked or belongs to a user that no longer exists.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Field messages returned inside domain.ValidationErrors.
const (
	MsgEmailTaken        = "The email has already been taken."
	MsgNoAccountForEmail = "No account found with that email address."
	MsgInvalidResetToken = "This password reset token is invalid."
)

// ServiceError wraps an unexpected failure with the service and operation
// it occurred in.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}
