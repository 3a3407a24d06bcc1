package service

import (
	"errors"
	"fmt"
)

// ErrorCode classifies service failures for transport mapping.
type ErrorCode string

const (
	ErrorInvalid     ErrorCode = "invalid"
	ErrorNotFound    ErrorCode = "not_found"
	ErrorConflict    ErrorCode = "conflict"
	ErrorUnavailable ErrorCode = "unavailable"
)

// ServiceError is the error taxonomy shared by all services.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewUnavailableError(msg string) error {
	return &ServiceError{Code: ErrorUnavailable, Message: msg}
}

// AsServiceError unwraps err into a ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// ExportError reports a failed report serialization. The failing format is
// kept so callers can tell the user which export broke.
type ExportError struct {
	Format string
	Cause  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Cause)
}

func (e *ExportError) Unwrap() error { return e.Cause }
