package pyenv

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Kind classifies the environment an interpreter belongs to.
type Kind string

const (
	// KindInfer requests kind inference at construction time.
	KindInfer Kind = ""

	KindSystem  Kind = "system"
	KindVenv    Kind = "venv"
	KindPoetry  Kind = "poetry"
	KindConda   Kind = "conda"
	KindUnknown Kind = "unknown"
)

// kindRule matches a path marker to an environment kind.
type kindRule struct {
	marker string
	kind   Kind
}

// inferRules are checked in order; the first match wins. Order matters
// because a path can contain more than one marker (a venv created
// inside a conda install, for instance).
var inferRules = []kindRule{
	{"venv", KindVenv},
	{"pypoetry", KindPoetry},
	{"conda", KindConda},
}

// sysInterpreter resolves the system Python interpreter path. Package
// variable so tests can pin it.
var sysInterpreter = findSysInterpreter

// InferKind guesses the environment kind from the interpreter path
// alone. Substring matching on the normalized absolute path is a known
// approximation: a directory literally named "conda_experiments" on a
// system install will be misclassified.
func InferKind(exePath string) Kind {
	exe := normalizePath(exePath)

	for _, rule := range inferRules {
		if strings.Contains(exe, rule.marker) {
			return rule.kind
		}
	}

	if sys := sysInterpreter(); sys != "" && normalizePath(sys) == exe {
		return KindSystem
	}

	return KindUnknown
}

// normalizePath absolutizes a path and converts it to slash form so
// marker matching behaves the same on every platform.
func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.ToSlash(abs)
}

// findSysInterpreter locates the Python interpreter on PATH.
func findSysInterpreter() string {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
