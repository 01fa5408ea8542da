package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced entity (order, menu item) that does not
// exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError is malformed or semantically invalid input. Handlers map
// it to 400 with the message intact.
type ValidationError struct {
	msg string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

// StorageError wraps an underlying persistence failure. Handlers map it to
// 500 with a generic message; the cause is only logged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
