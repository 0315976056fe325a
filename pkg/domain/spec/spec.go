package spec

import "sort"

// Spec is one directory under .kiro/specs. Document paths are empty when
// the file did not exist at discovery time.
type Spec struct {
	Name             string `json:"name" yaml:"name"`
	RequirementsPath string `json:"requirements_path,omitempty" yaml:"requirements_path,omitempty"`
	DesignPath       string `json:"design_path,omitempty" yaml:"design_path,omitempty"`
	TasksPath        string `json:"tasks_path,omitempty" yaml:"tasks_path,omitempty"`
	TotalTasks       *int   `json:"total_tasks,omitempty" yaml:"total_tasks,omitempty"`
	CompletedTasks   *int   `json:"completed_tasks,omitempty" yaml:"completed_tasks,omitempty"`
}

// Path returns the recorded path of the given document.
func (s Spec) Path(kind DocumentKind) (string, bool) {
	var p string
	switch kind {
	case Requirements:
		p = s.RequirementsPath
	case Design:
		p = s.DesignPath
	case Tasks:
		p = s.TasksPath
	}
	return p, p != ""
}

// WithTaskCount returns a copy of s carrying the given checklist counts.
func (s Spec) WithTaskCount(c TaskCount) Spec {
	total, completed := c.Total, c.Completed
	s.TotalTasks = &total
	s.CompletedTasks = &completed
	return s
}

// Progress returns the spec's checklist progress. Missing counts are zero.
func (s Spec) Progress() Progress {
	var p Progress
	if s.TotalTasks != nil {
		p.Total = *s.TotalTasks
	}
	if s.CompletedTasks != nil {
		p.Completed = *s.CompletedTasks
	}
	return p
}

// Collection is an immutable, name-ordered list of specs.
type Collection struct {
	specs []Spec
}

// NewCollection sorts specs by name and wraps them. The input slice is copied.
func NewCollection(specs []Spec) Collection {
	sorted := make([]Spec, len(specs))
	copy(sorted, specs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return Collection{specs: sorted}
}

// Len returns the number of specs.
func (c Collection) Len() int { return len(c.specs) }

// At returns the spec at index i.
func (c Collection) At(i int) (Spec, bool) {
	if i < 0 || i >= len(c.specs) {
		return Spec{}, false
	}
	return c.specs[i], true
}

// Names returns the spec names in order.
func (c Collection) Names() []string {
	names := make([]string, len(c.specs))
	for i, s := range c.specs {
		names[i] = s.Name
	}
	return names
}

// All returns a copy of the specs in order.
func (c Collection) All() []Spec {
	out := make([]Spec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Progress sums the checklist progress of every spec.
func (c Collection) Progress() Progress {
	var total Progress
	for _, s := range c.specs {
		p := s.Progress()
		total.Total += p.Total
		total.Completed += p.Completed
	}
	return total
}

// Progress is a completed/total pair of checklist items.
type Progress struct {
	Total     int
	Completed int
}

// Ratio returns the completion ratio in [0, 1]. Zero when there are no tasks.
func (p Progress) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Percent returns the truncated completion percentage.
func (p Progress) Percent() int {
	return int(p.Ratio() * 100)
}
