package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates the calculation rejected its input.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidInputError represents a calculation precondition violation, such as
// a non-positive body weight or a ramp stage power that does not exceed one
// stage increment. It identifies which field failed and provides a
// human-readable explanation.
type InvalidInputError struct {
	// Field is the name of the input that violated its precondition.
	Field string
	// Message explains the violation.
	Message string
}

// Error returns a formatted message describing the invalid input.
//
// Returns:
//   - string: The error message string.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Message)
}

// NewInvalidInput creates a new InvalidInputError for the given field with a
// formatted message.
//
// Parameters:
//   - field: The name of the offending input.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidInputError instance.
func NewInvalidInput(field, format string, a ...any) error {
	return InvalidInputError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie InvalidInputError
	return errors.As(err, &iie)
}

// ExportError encapsulates a CSV export failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong while writing the results file.
type ExportError struct {
	// Path is the destination file the export was writing to.
	Path string
	// Cause is the underlying error that triggered the export failure.
	Cause error
}

// Error returns a formatted message describing the export failure.
//
// Returns:
//   - string: The error message string.
func (e ExportError) Error() string {
	return fmt.Sprintf("export to %q failed: %v", e.Path, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the ExportError.
func (e ExportError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
