// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Flat error taxonomy shared by every package in the library.
// All operations report failures by value through these codes;
// nothing here panics and nothing is fatal.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Callers match with errors.Is.
var (
	ErrNullPointer     = errors.New("null argument")
	ErrOutOfMemory     = errors.New("out of memory")
	ErrInvalidIndex    = errors.New("index out of range")
	ErrContainerEmpty  = errors.New("container is empty")
	ErrContainerFull   = errors.New("container is full")
	ErrIteratorEnd     = errors.New("iterator exhausted")
	ErrNotFound        = errors.New("element not found")
	ErrAlreadyExists   = errors.New("element already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknown         = errors.New("unknown error")
)

// ErrorCode identifies a failure kind numerically for callers that
// switch on outcomes rather than match sentinels.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	CodeNullPointer
	CodeOutOfMemory
	CodeInvalidIndex
	CodeContainerEmpty
	CodeContainerFull
	CodeIteratorEnd
	CodeNotFound
	CodeAlreadyExists
	CodeInvalidArgument
	CodeUnknown
)

var codeSentinels = map[ErrorCode]error{
	CodeNullPointer:     ErrNullPointer,
	CodeOutOfMemory:     ErrOutOfMemory,
	CodeInvalidIndex:    ErrInvalidIndex,
	CodeContainerEmpty:  ErrContainerEmpty,
	CodeContainerFull:   ErrContainerFull,
	CodeIteratorEnd:     ErrIteratorEnd,
	CodeNotFound:        ErrNotFound,
	CodeAlreadyExists:   ErrAlreadyExists,
	CodeInvalidArgument: ErrInvalidArgument,
	CodeUnknown:         ErrUnknown,
}

// String returns the sentinel message for the code.
func (c ErrorCode) String() string {
	if c == CodeOK {
		return "ok"
	}
	if s, ok := codeSentinels[c]; ok {
		return s.Error()
	}
	return fmt.Sprintf("error code %d", int(c))
}

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

// Unwrap maps the structured error onto its sentinel so that
// errors.Is(err, api.ErrNotFound) works on wrapped values.
func (e *Error) Unwrap() error {
	if s, ok := codeSentinels[e.Code]; ok {
		return s
	}
	return nil
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

// Code extracts the error code from any error produced by this library.
// A nil error yields CodeOK; foreign errors yield CodeUnknown.
func Code(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	for code, sentinel := range codeSentinels {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return CodeUnknown
}
