// Package apperr defines the error taxonomy shared by services and
// handlers: validation failures, missing records, rejected operations,
// mapped auth provider errors, and transient store failures.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports missing or malformed caller input. Fields
// lists the offending field names when they are known.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

// NewValidation creates a ValidationError with an optional field list.
func NewValidation(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFound creates a NotFoundError for the given entity and id.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidOperationError reports an operation the caller is never
// allowed to perform, such as following oneself.
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// NewInvalidOperation creates an InvalidOperationError.
func NewInvalidOperation(message string) *InvalidOperationError {
	return &InvalidOperationError{Message: message}
}

// AuthError wraps an identity provider failure. Code is the provider
// error code, Message the user-facing text mapped from it.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuth creates an AuthError carrying the user-facing message for
// the given provider code.
func NewAuth(code string) *AuthError {
	return &AuthError{Code: code, Message: AuthMessage(code)}
}

// TransientError wraps a network or store failure that is not the
// caller's fault and may succeed if retried manually.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransient wraps err as a TransientError for the given operation.
func NewTransient(op string, err error) *TransientError {
	return &TransientError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidOperation reports whether err is an InvalidOperationError.
func IsInvalidOperation(err error) bool {
	var e *InvalidOperationError
	return errors.As(err, &e)
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsTransient reports whether err is a TransientError.
func IsTransient(err error) bool {
	var e *TransientError
	return errors.As(err, &e)
}
