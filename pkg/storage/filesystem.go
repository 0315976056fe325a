package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/radar/pkg/domain/spec"
)

const KiroDir = ".kiro"
const SpecsDir = "specs"

// ErrDiscovery wraps failures to enumerate the specs directory.
var ErrDiscovery = errors.New("spec discovery failed")

// FilesystemRepository discovers specs under <root>/.kiro/specs and reads
// their documents from disk.
type FilesystemRepository struct {
	root   string
	filter *PatternFilter
	logger *slog.Logger
}

// Option configures a FilesystemRepository.
type Option func(*FilesystemRepository)

// WithInclude limits discovery to spec directories whose name matches at
// least one of the globs. No globs means every directory.
func WithInclude(patterns []string) Option {
	return func(r *FilesystemRepository) {
		r.filter.Include = patterns
	}
}

// WithIgnore skips spec directories whose name matches any of the globs.
// Ignore wins over include.
func WithIgnore(patterns []string) Option {
	return func(r *FilesystemRepository) {
		r.filter.Exclude = patterns
	}
}

// WithLogger sets the repository logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *FilesystemRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewFilesystemRepository(root string, opts ...Option) *FilesystemRepository {
	r := &FilesystemRepository{
		root:   root,
		filter: NewPatternFilter(nil, nil),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the project root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// SpecsPath returns <root>/.kiro/specs.
func (r *FilesystemRepository) SpecsPath() string {
	return filepath.Join(r.root, KiroDir, SpecsDir)
}

// Discover lists every spec directory. A missing specs directory is an
// empty collection, not an error.
func (r *FilesystemRepository) Discover(ctx context.Context) (spec.Collection, error) {
	specsDir := r.SpecsPath()

	entries, err := os.ReadDir(specsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("specs directory not found", "path", specsDir)
			return spec.NewCollection(nil), nil
		}
		return spec.Collection{}, fmt.Errorf("%w: %s: %w", ErrDiscovery, specsDir, err)
	}

	specs := make([]spec.Spec, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return spec.Collection{}, err
		}

		dir := filepath.Join(specsDir, entry.Name())
		if !isDir(entry, dir) {
			continue
		}
		if !r.filter.Matches(entry.Name()) {
			r.logger.Debug("spec directory filtered out", "name", entry.Name())
			continue
		}

		specs = append(specs, r.loadSpec(entry.Name(), dir))
	}

	collection := spec.NewCollection(specs)
	r.logger.Info("specs discovered", "path", specsDir, "count", collection.Len())
	return collection, nil
}

func (r *FilesystemRepository) loadSpec(name, dir string) spec.Spec {
	s := spec.Spec{Name: name}
	for _, kind := range spec.DocumentKinds {
		path := filepath.Join(dir, kind.Filename())
		if !fileExists(path) {
			continue
		}
		switch kind {
		case spec.Requirements:
			s.RequirementsPath = path
		case spec.Design:
			s.DesignPath = path
		case spec.Tasks:
			s.TasksPath = path
		}
	}

	count, err := spec.CountTasksFile(filepath.Join(dir, spec.Tasks.Filename()))
	if err != nil {
		r.logger.Warn("tasks file unreadable, counting as empty", "spec", name, "error", err)
	}
	return s.WithTaskCount(count)
}

// LoadDocument reads a spec document from disk on every call.
func (r *FilesystemRepository) LoadDocument(s spec.Spec, kind spec.DocumentKind) spec.Document {
	doc := spec.Document{Kind: kind}

	path, ok := s.Path(kind)
	if !ok {
		doc.Status = spec.Missing
		return doc
	}

	// #nosec G304 -- path was recorded by Discover under the specs directory
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug("document unreadable", "spec", s.Name, "path", path, "error", err)
		doc.Status = spec.Unreadable
		doc.Err = err
		return doc
	}

	doc.Status = spec.Present
	doc.Content = string(data)
	return doc
}

// isDir follows symlinks so linked spec directories are discovered.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
