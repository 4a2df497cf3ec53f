package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeProfileNotFound, "test error message")

	if err.Code != ErrCodeProfileNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeProfileNotFound, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeEnvExecFailed, "wrapped message", cause)

	if err.Code != ErrCodeEnvExecFailed {
		t.Errorf("expected code %s, got %s", ErrCodeEnvExecFailed, err.Code)
	}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeEnvParseFailed, "bad pip output").
		WithSuggestion("first suggestion").
		WithSuggestion("second suggestion")

	msg := err.Error()

	if !strings.Contains(msg, string(ErrCodeEnvParseFailed)) {
		t.Errorf("expected error string to contain code, got '%s'", msg)
	}
	if !strings.Contains(msg, "bad pip output") {
		t.Errorf("expected error string to contain message, got '%s'", msg)
	}
	if !strings.Contains(msg, "first suggestion") || !strings.Contains(msg, "second suggestion") {
		t.Errorf("expected error string to contain suggestions, got '%s'", msg)
	}
}

func TestErrorFormattingWithCause(t *testing.T) {
	cause := fmt.Errorf("exec: permission denied")
	err := Wrap(ErrCodeEnvExecFailed, "failed to run interpreter", cause)

	msg := err.Error()
	if !strings.Contains(msg, "permission denied") {
		t.Errorf("expected error string to contain cause, got '%s'", msg)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"coded error", New(ErrCodeEnvTimeout, "timed out"), ErrCodeEnvTimeout},
		{"wrapped coded error", fmt.Errorf("context: %w", New(ErrCodeTaskUnknownOption, "bad option")), ErrCodeTaskUnknownOption},
		{"plain error", fmt.Errorf("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name string
		err  *PybundleError
		code ErrorCode
	}{
		{"env exec", NewEnvExecError("/usr/bin/python3", cause), ErrCodeEnvExecFailed},
		{"env parse", NewEnvParseError(cause), ErrCodeEnvParseFailed},
		{"env timeout", NewEnvTimeoutError("/usr/bin/python3", cause), ErrCodeEnvTimeout},
		{"unknown option", NewUnknownOptionError("frobnicate"), ErrCodeTaskUnknownOption},
		{"profile not found", NewProfileNotFoundError("missing.yaml"), ErrCodeProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if len(tt.err.Suggestions) == 0 {
				t.Error("expected at least one suggestion")
			}
		})
	}
}
