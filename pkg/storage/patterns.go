package storage

import (
	"path/filepath"
)

// PatternFilter filters spec directory names with include/exclude globs.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a new pattern filter.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches returns true if the name passes the filter.
// If include patterns are set, at least one must match.
// If exclude patterns are set, none must match.
// Malformed patterns never match.
func (f *PatternFilter) Matches(name string) bool {
	if f == nil {
		return true
	}
	base := filepath.Base(name)

	for _, pattern := range f.Exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
