package wiring

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/radar/internal/infrastructure/config"
	"github.com/felixgeelhaar/radar/pkg/application"
	"github.com/felixgeelhaar/radar/pkg/storage"
)

// AppServices exposes the application layer services wired together for a project root.
type AppServices struct {
	Root   string
	Config *config.Config
	Logger *slog.Logger
	Repo   *storage.FilesystemRepository
	Spec   *application.SpecService

	closer io.Closer
}

// BuildAppServices loads configuration for root and constructs the services.
// logOutput receives log records when no log file is configured; pass nil
// to discard them. Callers must Close the result.
func BuildAppServices(root string, logOutput io.Writer) (*AppServices, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	logger, closer, err := NewLogger(cfg.Log, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	repo := storage.NewFilesystemRepository(root,
		storage.WithInclude(cfg.Include),
		storage.WithIgnore(cfg.Ignore),
		storage.WithLogger(logger),
	)

	return &AppServices{
		Root:   root,
		Config: cfg,
		Logger: logger,
		Repo:   repo,
		Spec:   application.NewSpecService(repo, logger),
		closer: closer,
	}, nil
}

// Close releases the log file, if one was opened.
func (s *AppServices) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
