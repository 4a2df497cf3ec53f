package pyenv

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"pybundle/internal/errors"
)

// versionSnippet prints the interpreter version without a trailing newline.
const versionSnippet = "import platform;print(platform.python_version(), end='')"

// pipListArgs asks pip for a machine-readable package list with all
// advisory noise suppressed.
var pipListArgs = []string{
	"-m", "pip", "list",
	"--format", "json",
	"--disable-pip-version-check",
	"--no-color",
	"--no-python-version-warning",
}

// PythonVersion runs the interpreter at exe and returns its version
// string, such as "3.11.7", with no trailing newline.
func PythonVersion(ctx context.Context, exe string) (string, error) {
	out, err := runQuery(ctx, exe, "-c", versionSnippet)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// InstalledPackages runs pip in the environment of the interpreter at
// exe and returns the installed packages. An interpreter that cannot
// be run and pip output that cannot be parsed surface as distinct
// error codes.
func InstalledPackages(ctx context.Context, exe string) ([]Package, error) {
	out, err := runQuery(ctx, exe, pipListArgs...)
	if err != nil {
		return nil, err
	}
	return ParsePackages(out)
}

// ParsePackages parses pip's JSON package list output.
func ParsePackages(data []byte) ([]Package, error) {
	var packages []Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, errors.NewEnvParseError(err)
	}
	return packages, nil
}

// runQuery executes one interpreter query, applying DefaultTimeout
// when the caller's context has no deadline.
func runQuery(ctx context.Context, exe string, args ...string) ([]byte, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, exe, args...).Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewEnvTimeoutError(exe, err)
		}
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			// Keep the captured stderr; it usually names the actual problem.
			err = fmt.Errorf("%w: %s", err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, errors.NewEnvExecError(exe, err)
	}
	return out, nil
}
