package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Environment inspection errors (ENV-001 to ENV-099)
	ErrCodeEnvExecFailed  ErrorCode = "ENV-001"
	ErrCodeEnvParseFailed ErrorCode = "ENV-002"
	ErrCodeEnvTimeout     ErrorCode = "ENV-003"
	ErrCodeEnvInterpreter ErrorCode = "ENV-004"

	// Task option errors (TASK-001 to TASK-099)
	ErrCodeTaskUnknownOption ErrorCode = "TASK-001"
	ErrCodeTaskNotReady      ErrorCode = "TASK-002"

	// Profile errors (PROFILE-001 to PROFILE-099)
	ErrCodeProfileNotFound  ErrorCode = "PROFILE-001"
	ErrCodeProfileInvalid   ErrorCode = "PROFILE-002"
	ErrCodeProfileUnmarshal ErrorCode = "PROFILE-003"
	ErrCodeProfileMarshal   ErrorCode = "PROFILE-004"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// PybundleError represents an enhanced error with code, suggestions, and cause
type PybundleError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PybundleError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PybundleError) Unwrap() error {
	return e.Cause
}

// New creates a new PybundleError
func New(code ErrorCode, message string) *PybundleError {
	return &PybundleError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PybundleError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PybundleError {
	return &PybundleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PybundleError) WithSuggestion(suggestion string) *PybundleError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PybundleError) WithSuggestions(suggestions ...string) *PybundleError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the code carried by err, or "" if err is not a PybundleError
func CodeOf(err error) ErrorCode {
	var pe *PybundleError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// Common error constructors for frequently used errors

// NewEnvExecError creates an interpreter subprocess failure error
func NewEnvExecError(exe string, cause error) *PybundleError {
	return Wrap(ErrCodeEnvExecFailed, fmt.Sprintf("failed to run interpreter: %s", exe), cause).
		WithSuggestion("Check that the path points to a Python executable").
		WithSuggestion("Verify the file has execute permission")
}

// NewEnvParseError creates a package-list parse failure error
func NewEnvParseError(cause error) *PybundleError {
	return Wrap(ErrCodeEnvParseFailed, "failed to parse installed packages", cause).
		WithSuggestion("Check that pip is installed in the selected environment").
		WithSuggestion("Run 'pip list --format json' manually to inspect the output")
}

// NewEnvTimeoutError creates an interpreter query timeout error
func NewEnvTimeoutError(exe string, cause error) *PybundleError {
	return Wrap(ErrCodeEnvTimeout, fmt.Sprintf("interpreter query timed out: %s", exe), cause).
		WithSuggestion("Check that the interpreter starts without blocking on input").
		WithSuggestion("Increase the query timeout if the environment is slow to start")
}

// NewUnknownOptionError creates an unrecognized packaging option error
func NewUnknownOptionError(option string) *PybundleError {
	return New(ErrCodeTaskUnknownOption, fmt.Sprintf("'%s' is not a recognized packaging option", option)).
		WithSuggestion("Run 'pybundle check --help' to list supported options")
}

// NewProfileNotFoundError creates a profile file not found error
func NewProfileNotFoundError(path string) *PybundleError {
	return New(ErrCodeProfileNotFound, fmt.Sprintf("profile file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Run 'pybundle check --save <file>' to create a profile")
}
