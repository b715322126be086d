// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// invalid calculation input, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types implement Unwrap() where they carry a cause, supporting
// errors.Is() and errors.As().
package apperrors
