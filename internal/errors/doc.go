// Package apperrors defines the application-level error types and process
// exit codes. Domain failures (parse errors, unreadable files, division by
// zero) live next to the code that raises them; this package covers what
// the CLI layer maps to an exit status.
//
// Error Wrapping Guidelines:
// Errors are wrapped with fmt.Errorf and %w. Every type that carries a cause
// implements Unwrap() so errors.Is and errors.As see through it.
package apperrors
