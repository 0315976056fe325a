package wiring

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/radar/internal/infrastructure/config"
)

func TestBuildAppServices(t *testing.T) {
	t.Setenv(config.LogLevelEnv, "")
	root := t.TempDir()
	specDir := filepath.Join(root, ".kiro", "specs", "feature")
	if err := os.MkdirAll(specDir, 0700); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	services, err := BuildAppServices(root, &logs)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}
	defer func() { _ = services.Close() }()

	if services.Root != root || services.Config == nil || services.Spec == nil {
		t.Fatalf("incomplete services: %+v", services)
	}

	c, err := services.Spec.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 spec, got %d", c.Len())
	}
	if !strings.Contains(logs.String(), "specs discovered") || !strings.Contains(logs.String(), "session=") {
		t.Errorf("expected a discovery log line with a session id, got %q", logs.String())
	}
}

func TestBuildAppServices_IgnoreFromConfig(t *testing.T) {
	t.Setenv(config.LogLevelEnv, "")
	root := t.TempDir()
	for _, name := range []string{"keep", "_archive"} {
		if err := os.MkdirAll(filepath.Join(root, ".kiro", "specs", name), 0700); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(config.Path(root), []byte("ignore: [\"_*\"]\n"), 0600); err != nil {
		t.Fatal(err)
	}

	services, err := BuildAppServices(root, nil)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}
	defer func() { _ = services.Close() }()

	c, _ := services.Spec.Scan(context.Background())
	if got := c.Names(); len(got) != 1 || got[0] != "keep" {
		t.Errorf("Names() = %v, want [keep]", got)
	}
}

func TestBuildAppServices_IncludeFromConfig(t *testing.T) {
	t.Setenv(config.LogLevelEnv, "")
	root := t.TempDir()
	for _, name := range []string{"feature-a", "feature-b", "chore"} {
		if err := os.MkdirAll(filepath.Join(root, ".kiro", "specs", name), 0700); err != nil {
			t.Fatal(err)
		}
	}
	cfg := "include: [\"feature-*\"]\nignore: [\"*-b\"]\n"
	if err := os.WriteFile(config.Path(root), []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	services, err := BuildAppServices(root, nil)
	if err != nil {
		t.Fatalf("BuildAppServices: %v", err)
	}
	defer func() { _ = services.Close() }()

	c, _ := services.Spec.Scan(context.Background())
	if got := c.Names(); len(got) != 1 || got[0] != "feature-a" {
		t.Errorf("Names() = %v, want [feature-a]", got)
	}
}

func TestBuildAppServices_BadConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".kiro"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.Path(root), []byte("log: ["), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := BuildAppServices(root, nil); err == nil {
		t.Fatal("expected config error")
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "radar.log")

	logger, closer, err := NewLogger(config.LogConfig{File: path, Level: "debug"}, nil)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Debug("hello", "k", "v")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello") || !strings.Contains(string(data), "k=v") {
		t.Errorf("unexpected log contents %q", data)
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if closer != nil {
		t.Error("no closer expected without a log file")
	}

	logger.Info("quiet")
	logger.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, _, err := NewLogger(config.LogConfig{Level: "verbose"}, nil); err == nil {
		t.Fatal("expected error")
	}
}
