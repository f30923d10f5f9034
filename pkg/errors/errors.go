// Package errors marks errors with the location where they crossed
// the store boundary, so a failure deep inside the driver can be
// traced back to the call that surfaced it.
//
// Wrapped errors keep the errors.Is / errors.As protocol: sentinels
// like domain.ErrMissing survive wrapping.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// TracedError is an error annotated with the file, line and function
// where it was wrapped.
type TracedError struct {
	file     string
	line     int
	funcname string
	note     string
	err      error
}

func (e *TracedError) File() string {
	return e.file
}

func (e *TracedError) Line() int {
	return e.line
}

func (e *TracedError) Error() string {
	if e.note == "" {
		return fmt.Sprintf("%s (%s:%d): %s", e.funcname, e.file, e.line, e.err.Error())
	}
	return fmt.Sprintf("%s (%s:%d) %s: %s", e.funcname, e.file, e.line, e.note, e.err.Error())
}

func (e *TracedError) Unwrap() error {
	return e.err
}

// New creates a new error carrying the caller's location.
func New(text string) error {
	return wrap("", errors.New(text), 1)
}

// Wrap marks err with the caller's location.
func Wrap(err error) error {
	return wrap("", err, 1)
}

// WrapWithNote marks err with the caller's location and a short note
// saying what was being done.
func WrapWithNote(note string, err error) error {
	return wrap(note, err, 1)
}

func wrap(note string, err error, depth int) error {
	pc, file, line, ok := runtime.Caller(depth + 1)
	funcname := "(unknown func)"
	if !ok {
		file = "?"
		line = -1
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcname = fn.Name()
	}

	return &TracedError{
		funcname: funcname,
		file:     file,
		line:     line,
		note:     note,
		err:      err,
	}
}
