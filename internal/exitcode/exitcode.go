// Package exitcode maps errors to process exit codes so scripts
// driving pybundle can tell failure classes apart.
package exitcode

import (
	"os"

	"pybundle/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// EnvError indicates the interpreter environment could not be inspected
	EnvError = 3

	// ParseError indicates interpreter output could not be parsed
	ParseError = 4

	// ValidationError indicates an option failed validation
	ValidationError = 5

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeEnvExecFailed, errors.ErrCodeEnvTimeout, errors.ErrCodeEnvInterpreter:
		return EnvError
	case errors.ErrCodeEnvParseFailed, errors.ErrCodeProfileUnmarshal:
		return ParseError
	case errors.ErrCodeTaskUnknownOption:
		return UsageError
	case errors.ErrCodeTaskNotReady, errors.ErrCodeProfileInvalid:
		return ValidationError
	}

	return GeneralError
}
