// Package errors provides the harness error taxonomy. Configuration errors are raised
// before any timing starts; primitive faults abort the current measurement cell. A failed
// tag check is never an error.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors shared by every package of the harness.
var (
	// ErrInvalidConfig indicates a configuration problem detected before timing begins
	// (key or nonce length mismatch, zero repetitions, oversized message).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPrimitiveFault indicates the underlying cipher signalled an internal fault
	// (for example a buffer-length mismatch). It is fatal to the current cell.
	ErrPrimitiveFault = errors.New("primitive fault")

	// ErrInvalidInput indicates malformed input handed to a report or command.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the requested stored resource does not exist.
	ErrNotFound = errors.New("not found")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
