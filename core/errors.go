package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific form/draft field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned when a draft fails client-side validation;
// a failing draft never reaches the network.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// FieldMap flattens the field errors into a map keyed by field name.
func (err ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(err.Fields))
	for _, fe := range err.Fields {
		m[fe.Field] = fe.Error
	}
	return m
}

// ErrUnauthenticated is returned for any call the server rejected with 401.
// The HTTP client has already torn the session down by the time a caller sees it.
var ErrUnauthenticated = errors.New("authentication required")

// APIError is the uniform failure shape for backend calls.
// Status is the HTTP status code, or 0 when no response was received at all
// (network/config failure).
type APIError struct {
	Status  int
	Message string
}

func (err *APIError) Error() string {
	if err.Status == 0 {
		return fmt.Sprintf("api: %s", err.Message)
	}
	return fmt.Sprintf("api: %d: %s", err.Status, err.Message)
}

// IsNetwork reports whether the failure happened before any response arrived.
func (err *APIError) IsNetwork() bool { return err.Status == 0 }

// MissingContextError is returned when a required session-context value
// (branchId, classId, ...) is absent from durable storage. The dependent screen
// must surface it and decline to proceed; context values are never defaulted.
type MissingContextError struct {
	Key string
}

func (err *MissingContextError) Error() string {
	return fmt.Sprintf("session: required context value %q is not set", err.Key)
}

// IsMissingContext reports whether err (or its cause) is a MissingContextError.
func IsMissingContext(err error) bool {
	var mc *MissingContextError
	return errors.As(err, &mc)
}
