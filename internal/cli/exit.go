package cli

import (
	"errors"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Program halted normally
	ExitFailure      = 1 // Program or network failed at runtime
	ExitCommandError = 2 // Bad arguments, unreadable program or configuration
)

// ExitError is an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return f("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
