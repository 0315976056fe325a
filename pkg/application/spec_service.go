package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/radar/pkg/domain/spec"
)

type SpecService struct {
	repo   spec.Repository
	logger *slog.Logger
}

func NewSpecService(repo spec.Repository, logger *slog.Logger) *SpecService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpecService{repo: repo, logger: logger}
}

// Scan discovers specs once. Discovery failures are logged and produce an
// empty collection so the dashboard can still start; the error is returned
// alongside for callers that want to surface it.
func (s *SpecService) Scan(ctx context.Context) (spec.Collection, error) {
	collection, err := s.repo.Discover(ctx)
	if err != nil {
		s.logger.Warn("spec discovery failed, starting with no specs", "error", err)
		return spec.NewCollection(nil), err
	}
	return collection, nil
}

// Document loads the given document of a spec. It is never cached.
func (s *SpecService) Document(sp spec.Spec, kind spec.DocumentKind) spec.Document {
	return s.repo.LoadDocument(sp, kind)
}
