// Package cli provides configuration and error handling for the pgc
// command.
package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes of the pgc command.
const (
	ExitSuccess  = 0
	ExitGeneral  = 1
	ExitConfig   = 2
	ExitRequest  = 3
	ExitGenerate = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode prints the error to w and returns the exit code for it.
func ExitCode(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(w, "Error:", err)
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// RequestError creates an ExitError with ExitRequest code.
func RequestError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitRequest, Message: msg, Err: err}
}

// GenerateError creates an ExitError with ExitGenerate code.
func GenerateError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGenerate, Message: msg, Err: err}
}
