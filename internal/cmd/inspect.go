package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pybundle/internal/log"
	"pybundle/internal/pyenv"
	"pybundle/internal/ux"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <python-executable>",
	Short: "Inspect a Python interpreter environment",
	Long: `Inspect a Python interpreter: its version, the packages installed in
its environment, and the kind of environment it belongs to (system,
venv, poetry, conda).

Examples:
  # Inspect the system interpreter
  pybundle inspect /usr/bin/python3

  # Inspect a project venv, full package list as JSON
  pybundle inspect .venv/bin/python --packages --format json
`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var (
	inspectFormat   string
	inspectKind     string
	inspectPackages bool
	inspectTimeout  time.Duration
)

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "output format (text, json, yaml)")
	inspectCmd.Flags().StringVar(&inspectKind, "kind", "", "environment kind override (system, venv, poetry, conda); inferred when omitted")
	inspectCmd.Flags().BoolVar(&inspectPackages, "packages", false, "include the full package list in text output")
	inspectCmd.Flags().DurationVar(&inspectTimeout, "timeout", pyenv.DefaultTimeout, "per-query interpreter timeout")

	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the output shape of the inspect command.
type inspectReport struct {
	Env          *pyenv.Env `json:"environment" yaml:"environment"`
	PackageCount int        `json:"package_count" yaml:"package_count"`
	ShowPackages bool       `json:"-" yaml:"-"`
}

func (r inspectReport) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Interpreter: %s\n", r.Env.ExePath)
	fmt.Fprintf(&b, "Version:     %s\n", r.Env.Version)
	fmt.Fprintf(&b, "Kind:        %s\n", r.Env.Kind)
	fmt.Fprintf(&b, "Packages:    %d installed", r.PackageCount)

	if r.ShowPackages {
		for _, pkg := range r.Env.Packages {
			fmt.Fprintf(&b, "\n  %s %s", pkg.Name, pkg.Version)
		}
	}

	return b.String()
}

func runInspect(cmd *cobra.Command, args []string) error {
	exe := args[0]
	logger := log.DefaultLogger()

	kind := pyenv.Kind(inspectKind)
	switch kind {
	case pyenv.KindInfer, pyenv.KindSystem, pyenv.KindVenv, pyenv.KindPoetry, pyenv.KindConda, pyenv.KindUnknown:
	default:
		return fmt.Errorf("unknown environment kind: %s (supported: system, venv, poetry, conda, unknown)", inspectKind)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), inspectTimeout)
	defer cancel()

	logger.Debug("inspecting interpreter", "exe", exe)

	env, err := pyenv.New(ctx, exe, kind)
	if err != nil {
		logger.WithError(err).Error("environment inspection failed")
		return err
	}

	logger.Info("environment inspected",
		"exe", env.ExePath, "version", env.Version, "kind", env.Kind,
		"packages", len(env.Packages))

	formatter, err := ux.NewFormatter(inspectFormat, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}

	return formatter.Format(inspectReport{
		Env:          env,
		PackageCount: len(env.Packages),
		ShowPackages: inspectPackages,
	})
}
