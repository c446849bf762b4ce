// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrCapacityExhausted reports a pool with no free slot, a full ring
	// on put, or an empty ring on get, at the moment of the call.
	ErrCapacityExhausted = fmt.Errorf("capacity exhausted")

	// ErrInvalidArgument reports a nil or short required buffer, a zero
	// element size, or an element count that is not a power of two.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrRegistryExhausted reports that the maximum number of ring
	// instances has already been registered.
	ErrRegistryExhausted = fmt.Errorf("registry exhausted")

	// ErrUnrecognizedHandle reports a descriptor outside the registry
	// table, or a pointer the pool does not own (including double free).
	ErrUnrecognizedHandle = fmt.Errorf("unrecognized handle")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityExhausted
	ErrCodeInvalidArgument
	ErrCodeRegistryExhausted
	ErrCodeUnrecognizedHandle
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
