// Package task holds the authoritative option set for one packaging
// run. It validates incoming option submissions and notifies observers
// of acceptance, rejection, and run readiness.
package task

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pybundle/internal/errors"
	"pybundle/internal/pyenv"
)

// Validator gates the file-path options before they are accepted.
type Validator interface {
	ValidateScript(path string) bool
	ValidateIcon(path string) bool
}

// Task is the single store of accepted option values for one packaging
// run. It is not safe for concurrent use; all submissions are expected
// to arrive from a single goroutine, the way a UI event loop or a CLI
// run delivers them.
type Task struct {
	id        uuid.UUID
	validator Validator
	env       *pyenv.Env

	options map[Option]Value

	onAccepted []func(Option, interface{})
	onRejected []func(Option)
	onReady    []func(bool)
}

// New creates a Task with every option unset.
func New(validator Validator) *Task {
	options := make(map[Option]Value, len(allOptions))
	for _, opt := range allOptions {
		options[opt] = Value{}
	}

	return &Task{
		id:        uuid.New(),
		validator: validator,
		options:   options,
	}
}

// ID returns the task's identity.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// SetEnv attaches the interpreter environment the run will use. The
// task owns the record for its lifetime.
func (t *Task) SetEnv(env *pyenv.Env) {
	t.env = env
}

// Env returns the attached interpreter environment, or nil.
func (t *Task) Env() *pyenv.Env {
	return t.env
}

// OnAccepted registers an observer for accepted options. The callback
// receives the option and the accepted value.
func (t *Task) OnAccepted(fn func(Option, interface{})) {
	t.onAccepted = append(t.onAccepted, fn)
}

// OnRejected registers an observer for rejected submissions.
func (t *Task) OnRejected(fn func(Option)) {
	t.onRejected = append(t.onRejected, fn)
}

// OnReady registers an observer for readiness changes. Readiness
// follows the script-path option: a valid script makes the task
// runnable, an invalid one does not.
func (t *Task) OnReady(fn func(bool)) {
	t.onReady = append(t.onReady, fn)
}

// Submit validates and stores one option value.
//
// The script and icon path options are validated; a failed validation
// is not an error, it only fires a rejection notification and leaves
// state untouched. Every other recognized option is stored verbatim.
// Submitting an option outside the enumeration returns an error and
// modifies nothing.
//
// Accepting the script path additionally derives the output name from
// the script's base name and accepts it as a side effect.
func (t *Task) Submit(opt Option, value interface{}) error {
	switch opt {
	case OptScriptPath:
		path := asPath(value)
		if !t.validator.ValidateScript(path) {
			t.emitReady(false)
			t.emitRejected(OptScriptPath)
			return nil
		}
		t.options[OptScriptPath] = setValue(path)
		t.emitReady(true)
		t.emitAccepted(OptScriptPath, path)

		// The output name defaults to the script name.
		stem := scriptStem(path)
		t.options[OptOutName] = setValue(stem)
		t.emitAccepted(OptOutName, stem)

	case OptIconPath:
		path := asPath(value)
		if !t.validator.ValidateIcon(path) {
			t.emitRejected(OptIconPath)
			return nil
		}
		t.options[OptIconPath] = setValue(path)
		t.emitAccepted(OptIconPath, path)

	default:
		if !opt.Valid() {
			return errors.NewUnknownOptionError(string(opt))
		}
		t.options[opt] = setValue(value)
		t.emitAccepted(opt, value)
	}

	return nil
}

// Get returns the accepted value for an option and whether one is set.
func (t *Task) Get(opt Option) (interface{}, bool) {
	return t.options[opt].Get()
}

// Accepted returns a snapshot of all currently set options.
func (t *Task) Accepted() map[Option]interface{} {
	out := make(map[Option]interface{})
	for opt, v := range t.options {
		if val, ok := v.Get(); ok {
			out[opt] = val
		}
	}
	return out
}

// Ready reports whether the task has an accepted script path.
func (t *Task) Ready() bool {
	return t.options[OptScriptPath].IsSet()
}

func (t *Task) emitAccepted(opt Option, value interface{}) {
	for _, fn := range t.onAccepted {
		fn(opt, value)
	}
}

func (t *Task) emitRejected(opt Option) {
	for _, fn := range t.onRejected {
		fn(opt)
	}
}

func (t *Task) emitReady(ready bool) {
	for _, fn := range t.onReady {
		fn(ready)
	}
}

// asPath renders a submitted value as a filesystem path.
func asPath(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// scriptStem returns the base name of a path with its extension
// stripped: ".../build_app.py" becomes "build_app".
func scriptStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
