// Package pyenv inspects Python interpreter environments: executable
// path, version, installed packages, and the kind of environment the
// interpreter belongs to (system, venv, poetry, conda).
package pyenv

import (
	"context"
	"path/filepath"
	"time"
)

// DefaultTimeout bounds each interpreter query. A hung interpreter or
// package manager fails construction instead of blocking forever.
const DefaultTimeout = 30 * time.Second

// Package is one installed-package record reported by pip.
type Package struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Env holds the facts known about one Python interpreter. It is
// populated at construction time and not updated afterwards; selecting
// a different interpreter means constructing a new Env.
type Env struct {
	// ExePath is the absolute path of the interpreter executable.
	ExePath string `json:"exe_path" yaml:"exe_path"`

	// Version is the interpreter version, such as "3.11.7".
	Version string `json:"version" yaml:"version"`

	// Packages lists the packages installed in the environment.
	Packages []Package `json:"packages" yaml:"packages"`

	// Kind is the inferred or explicitly supplied environment kind.
	Kind Kind `json:"kind" yaml:"kind"`
}

// New constructs an Env for the interpreter at exePath, querying the
// interpreter synchronously for its version and installed packages.
// Passing KindInfer as kind triggers kind inference from the path.
//
// If ctx carries no deadline, each query is bounded by DefaultTimeout.
// Construction fails if either query cannot be run, times out, or the
// package list cannot be parsed.
func New(ctx context.Context, exePath string, kind Kind) (*Env, error) {
	abs, err := filepath.Abs(exePath)
	if err != nil {
		abs = exePath
	}

	version, err := PythonVersion(ctx, abs)
	if err != nil {
		return nil, err
	}

	packages, err := InstalledPackages(ctx, abs)
	if err != nil {
		return nil, err
	}

	if kind == KindInfer {
		kind = InferKind(abs)
	}

	return &Env{
		ExePath:  abs,
		Version:  version,
		Packages: packages,
		Kind:     kind,
	}, nil
}

// PkgInstalled reports whether a package with exactly the given name
// is installed. The match is case-sensitive.
func (e *Env) PkgInstalled(name string) bool {
	for _, pkg := range e.Packages {
		if pkg.Name == name {
			return true
		}
	}
	return false
}
