package wiring

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/radar/internal/infrastructure/config"
	"github.com/google/uuid"
)

// NewLogger builds the session logger. The dashboard owns the terminal, so
// records go to the configured file, else to fallback, else nowhere. Every
// record carries a session id so runs can be told apart in a shared file.
func NewLogger(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = io.Discard
	var closer io.Closer
	switch {
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		// #nosec G304 -- log path comes from the project config
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	case fallback != nil:
		out = fallback
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("session", uuid.NewString())
	return logger, closer, nil
}
