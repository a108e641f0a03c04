// ============================================================================
// tzgrid - Terminal time zone grid
// ============================================================================
//
// Package:     tzerror
// Description: Structured error type with code, cause and details
// Author:      dpb1
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tzerror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with a code and metadata
type Error struct {
	message string
	cause   error
	code    Code
	details map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// The code of a coded error in the chain is inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]interface{}),
	}

	wrapped.code = GetCode(err)
	return wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a single detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Message returns the message without the cause
func (e *Error) Message() string {
	return e.message
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// String returns a detailed representation for debug output
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.code, e.message)

	keys := make([]string, 0, len(e.details))
	for k := range e.details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.details[k])
	}

	if e.cause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.cause)
	}
	return b.String()
}

// Coder is implemented by errors that carry a code without being an *Error
type Coder interface {
	Code() Code
}

// GetCode returns the code of the first coded error in the chain
func GetCode(err error) Code {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.Code()
	}
	return CodeUnknown
}

// HasCode checks if an error in the chain has the specified code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}
