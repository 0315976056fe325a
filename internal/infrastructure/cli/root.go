package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd opens the dashboard when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "radar",
	Version: Version,
	Short:   "A terminal dashboard for spec-driven development",
	Long: `Radar is a read-only terminal dashboard for spec-driven development.
It discovers the specs under .kiro/specs, tracks the checklist progress
in each tasks.md and lets you browse requirements, design and tasks
without leaving the terminal.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.Execute()
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Hint != "" {
		_, _ = fmt.Fprintf(RootCmd.ErrOrStderr(), "Hint: %s\n", cliErr.Hint)
	}
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&projectPath, "project", "C", "", "Project root containing .kiro/specs (default: current directory)")
	RootCmd.SetVersionTemplate("radar {{.Version}} (commit " + Commit + ", built " + Date + ")\n")
}
