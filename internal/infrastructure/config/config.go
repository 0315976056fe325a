package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/radar/pkg/storage"
	"gopkg.in/yaml.v3"
)

const configFile = "radar.yaml"

// LogLevelEnv overrides the configured log level.
const LogLevelEnv = "RADAR_LOG_LEVEL"

const defaultTheme = "monokai"

// ErrInvalid marks a config file that exists but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config stores dashboard preferences. It lives next to the specs in
// <root>/.kiro/radar.yaml and is optional.
type Config struct {
	Highlight bool      `yaml:"highlight"`
	Theme     string    `yaml:"theme"`
	Include   []string  `yaml:"include"`
	Ignore    []string  `yaml:"ignore"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig controls where the dashboard writes its log.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: defaultTheme,
		Log:   LogConfig{Level: "info"},
	}
}

// Path returns the config file location for a project root.
func Path(root string) string {
	return filepath.Join(root, storage.KiroDir, configFile)
}

// Load reads the config for root. A missing file yields defaults.
func Load(root string) (*Config, error) {
	cfg := Default()

	// #nosec G304 -- fixed file name under the project root
	data, err := os.ReadFile(Path(root))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read config: %w", ErrInvalid, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal config: %w", ErrInvalid, err)
		}
	}

	if level := os.Getenv(LogLevelEnv); level != "" {
		cfg.Log.Level = level
	}
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(root, cfg.Log.File)
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
}
