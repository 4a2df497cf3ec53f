package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"pybundle/internal/errors"
	"pybundle/internal/log"
	"pybundle/internal/profile"
	"pybundle/internal/pyenv"
	"pybundle/internal/task"
	"pybundle/internal/ux"
	"pybundle/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the options for a packaging run",
	Long: `Validate a set of packaging options the way a run would: the script and
icon paths are checked against the filesystem, everything else is
accepted as-is. The resulting option set can be saved as a profile and
replayed later.

Examples:
  # Validate a script and icon
  pybundle check --script app.py --icon app.ico

  # Replay a saved profile and add an option on top
  pybundle check --profile run.yaml --opt onefile=true

  # Validate and save the accepted options
  pybundle check --script app.py --save run.yaml

  # Also verify the target interpreter has pyinstaller installed
  pybundle check --script app.py --python .venv/bin/python
`,
	RunE: runCheck,
}

var (
	checkScript  string
	checkIcon    string
	checkOpts    []string
	checkProfile string
	checkSave    string
	checkPython  string
	checkFormat  string
)

func init() {
	checkCmd.Flags().StringVar(&checkScript, "script", "", "entry script to package")
	checkCmd.Flags().StringVar(&checkIcon, "icon", "", "application icon file")
	checkCmd.Flags().StringArrayVar(&checkOpts, "opt", nil, "additional option as name=value (repeatable)")
	checkCmd.Flags().StringVar(&checkProfile, "profile", "", "profile file to replay before other flags")
	checkCmd.Flags().StringVar(&checkSave, "save", "", "write the accepted options to a profile file")
	checkCmd.Flags().StringVar(&checkPython, "python", "", "interpreter to attach; verified to have pyinstaller installed")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format (text, json, yaml)")

	rootCmd.AddCommand(checkCmd)
}

// checkReport is the output shape of the check command.
type checkReport struct {
	Ready    bool                   `json:"ready" yaml:"ready"`
	Accepted map[string]interface{} `json:"accepted" yaml:"accepted"`
	Rejected []string               `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Warnings []string               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r checkReport) String() string {
	var b strings.Builder

	names := make([]string, 0, len(r.Accepted))
	for name := range r.Accepted {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "accepted  %-14s %v\n", name, r.Accepted[name])
	}
	for _, name := range r.Rejected {
		fmt.Fprintf(&b, "rejected  %s\n", name)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "warning   %s\n", warning)
	}

	if r.Ready {
		b.WriteString("ready to package")
	} else {
		b.WriteString("not ready: no valid script accepted")
	}

	return b.String()
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := log.DefaultLogger()

	tk := task.New(validate.FilePathValidator{})
	report := &checkReport{Accepted: make(map[string]interface{})}

	tk.OnAccepted(func(opt task.Option, value interface{}) {
		logger.Debug("option accepted", "option", string(opt), "value", value)
	})
	tk.OnRejected(func(opt task.Option) {
		logger.Warn("option rejected", "option", string(opt))
		report.Rejected = append(report.Rejected, string(opt))
	})
	tk.OnReady(func(ready bool) {
		logger.Debug("readiness changed", "ready", ready)
	})

	if checkProfile != "" {
		p, err := profile.Load(checkProfile)
		if err != nil {
			return err
		}
		if err := p.Apply(tk); err != nil {
			return err
		}
	}

	if checkScript != "" {
		if err := tk.Submit(task.OptScriptPath, checkScript); err != nil {
			return err
		}
	}
	if checkIcon != "" {
		if err := tk.Submit(task.OptIconPath, checkIcon); err != nil {
			return err
		}
	}

	for _, raw := range checkOpts {
		name, value, found := strings.Cut(raw, "=")
		if !found {
			return fmt.Errorf("invalid --opt %q: expected name=value", raw)
		}
		if err := tk.Submit(task.Option(name), parseOptValue(value)); err != nil {
			return err
		}
	}

	if checkPython != "" {
		env, err := pyenv.New(cmd.Context(), checkPython, pyenv.KindInfer)
		if err != nil {
			return err
		}
		tk.SetEnv(env)
		if !env.PkgInstalled("pyinstaller") {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("pyinstaller is not installed in %s", env.ExePath))
		}
	}

	for opt, value := range tk.Accepted() {
		report.Accepted[string(opt)] = value
	}
	report.Ready = tk.Ready()

	if checkSave != "" {
		if err := profile.Save(profile.FromTask(tk), checkSave); err != nil {
			return err
		}
		logger.Info("profile saved", "path", checkSave)
	}

	formatter, err := ux.NewFormatter(checkFormat, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}
	if err := formatter.Format(*report); err != nil {
		return err
	}

	if len(report.Rejected) > 0 {
		return errors.New(errors.ErrCodeProfileInvalid,
			fmt.Sprintf("%d option(s) failed validation", len(report.Rejected)))
	}
	if !report.Ready {
		return errors.New(errors.ErrCodeTaskNotReady, "no valid script path accepted")
	}

	return nil
}

// parseOptValue turns flag text into a typed option value, so booleans
// in profiles written by --save round-trip as booleans.
func parseOptValue(s string) interface{} {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
