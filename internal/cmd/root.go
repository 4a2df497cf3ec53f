package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"pybundle/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "pybundle",
	Short: "Front-end for PyInstaller packaging runs",
	Long: `pybundle collects and validates the options for a PyInstaller packaging
run before the packager is invoked. It inspects Python interpreter
environments (version, installed packages, environment kind) and keeps
a validated option set that can be saved and replayed as a profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		log.SetDefaultLogger(log.New(log.Config{
			Level:  log.ParseLevel(level),
			Format: log.ParseFormat(format),
			Output: cmd.ErrOrStderr(),
		}))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}
