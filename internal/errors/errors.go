package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes. Per-file and per-line failures are reported but
// never change the exit status.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error, e.g. metrics could not be written.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents invalid user configuration, such as an unknown
// strategy or a negative channel buffer.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the message.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
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

// ValidationError identifies which configuration field failed validation.
type ValidationError struct {
	// Field is the flag or environment key that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps err with additional context using %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCode maps an error returned by the application layer to a process
// exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
