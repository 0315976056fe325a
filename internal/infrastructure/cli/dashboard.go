package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/radar/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

// skipDashboardEnv lets tests build the dashboard without taking over the terminal.
const skipDashboardEnv = "RADAR_SKIP_DASHBOARD_RUN"

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard (default command)",
	RunE:  runDashboard,
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	services, err := loadServicesForCurrentDir(nil)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	// Discovery is best effort; the service already logged the failure.
	specs, _ := services.Spec.Scan(ctx)

	model, err := tui.NewModel(specs, services.Spec, tui.Options{
		Version:   Version,
		Highlight: services.Config.Highlight,
		Theme:     services.Config.Theme,
		Logger:    services.Logger,
	})
	if err != nil {
		return NewCLIError("failed to build dashboard", "", err)
	}

	if os.Getenv(skipDashboardEnv) == "true" {
		return nil
	}

	services.Logger.Info("dashboard started", "root", services.Root, "specs", specs.Len())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		services.Logger.Error("dashboard run failed", "error", err)
		return NewCLIError("dashboard run failed", "Run radar in an interactive terminal, or use 'radar status'", err)
	}
	services.Logger.Info("dashboard closed")
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
