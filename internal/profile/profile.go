// Package profile persists the option set of a packaging task as a
// YAML file, so a run can be stored and replayed later.
package profile

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pybundle/internal/errors"
	"pybundle/internal/task"
)

// Profile is the serialized form of a task's accepted options. Only
// options that were actually accepted appear in the file.
type Profile struct {
	Options map[string]interface{} `yaml:"options"`
}

// FromTask captures a task's accepted options into a Profile.
func FromTask(t *task.Task) *Profile {
	options := make(map[string]interface{})
	for opt, val := range t.Accepted() {
		options[string(opt)] = val
	}
	return &Profile{Options: options}
}

// Apply replays the profile's options through the task's Submit path,
// so script and icon paths are re-validated against the current
// filesystem rather than trusted from the file. Options are applied in
// enumeration order: the script path comes first, so an explicit
// out_name stored in the profile overrides the one derived from the
// script. A profile naming an unrecognized option is rejected before
// anything is applied.
func (p *Profile) Apply(t *task.Task) error {
	for name := range p.Options {
		if !task.Option(name).Valid() {
			return errors.NewUnknownOptionError(name)
		}
	}

	for _, opt := range task.Options() {
		val, ok := p.Options[string(opt)]
		if !ok {
			continue
		}
		if err := t.Submit(opt, val); err != nil {
			return err
		}
	}

	return nil
}

// Load reads a Profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewProfileNotFoundError(path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "read profile file", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProfileUnmarshal, "unmarshal profile", err)
	}

	return &p, nil
}

// Save writes a Profile to a YAML file, creating parent directories as
// needed.
func Save(p *Profile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "create profile directory", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(errors.ErrCodeProfileMarshal, "marshal profile", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "write profile file", err)
	}

	return nil
}
