package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/radar/internal/infrastructure/config"
)

func TestRunDashboard_BuildsWithoutTerminal(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	defer resetStatusFlags()
	t.Setenv(skipDashboardEnv, "true")
	t.Setenv(config.LogLevelEnv, "debug")

	writeSpec(t, dir, "feature", map[string]string{"tasks.md": "- [x] a\n"})
	logPath := filepath.Join(dir, "radar.log")
	if err := os.WriteFile(config.Path(dir), []byte("highlight: true\nlog:\n  file: radar.log\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := RootCmd.RunE(RootCmd, nil); err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file should be created: %v", err)
	}
	if !strings.Contains(string(data), "specs discovered") {
		t.Errorf("expected discovery to be logged, got %q", data)
	}
}

func TestRunDashboard_DiscoveryIsBestEffort(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	defer resetStatusFlags()
	t.Setenv(skipDashboardEnv, "true")
	t.Setenv(config.LogLevelEnv, "")

	if err := os.MkdirAll(filepath.Join(dir, ".kiro"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".kiro", "specs"), []byte("not a dir"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := dashboardCmd.RunE(dashboardCmd, nil); err != nil {
		t.Fatalf("dashboard should start with an empty list, got %v", err)
	}
}

func TestRunDashboard_InvalidConfig(t *testing.T) {
	dir, cleanup := withTempDir(t)
	defer cleanup()
	defer resetStatusFlags()
	t.Setenv(skipDashboardEnv, "true")
	t.Setenv(config.LogLevelEnv, "shout")

	if err := os.MkdirAll(filepath.Join(dir, ".kiro"), 0700); err != nil {
		t.Fatal(err)
	}

	err := RootCmd.RunE(RootCmd, nil)
	if err == nil {
		t.Fatal("expected an invalid log level to fail startup")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
}
