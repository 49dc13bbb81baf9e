// Package api
// Author: momentics
//
// Common error types and error handling utilities for evbuf.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrNoCapacity: the record queue's byte budget is exhausted.
	// Transient; the caller should skip the event, nothing is retried here.
	ErrNoCapacity = fmt.Errorf("record queue capacity exhausted")

	// ErrSizeExceeded: requested size is above the transport's declared
	// capacity. Caller error, never satisfiable.
	ErrSizeExceeded = fmt.Errorf("requested size exceeds transport capacity")

	// ErrArenaUninitialized: the scratch slot for the unit does not
	// exist. Broken setup, not a runtime condition to retry.
	ErrArenaUninitialized = fmt.Errorf("scratch arena not initialized for unit")

	// ErrInvalidArgument: malformed input (non-positive size, nil handle).
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// DeliveryError carries the negative status code reported by the
// secondary delivery mechanism on a rejected slot-mode submission.
// The code is relayed verbatim; this layer neither retries nor logs.
type DeliveryError struct {
	Status int
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery rejected event (status %d)", e.Status)
}

// ErrorCode classifies structured errors produced during construction.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeResourceExhausted
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
