package spec

import "strings"

// DocumentKind identifies one of the three well-known spec documents.
type DocumentKind int

const (
	Requirements DocumentKind = iota
	Design
	Tasks
)

// DocumentKinds lists the kinds in tab order.
var DocumentKinds = []DocumentKind{Requirements, Design, Tasks}

// Filename returns the on-disk file name for the kind.
func (k DocumentKind) Filename() string {
	switch k {
	case Design:
		return "design.md"
	case Tasks:
		return "tasks.md"
	default:
		return "requirements.md"
	}
}

// Title returns the human-readable tab label.
func (k DocumentKind) Title() string {
	switch k {
	case Design:
		return "Design"
	case Tasks:
		return "Tasks"
	default:
		return "Requirements"
	}
}

// Next returns the following kind, wrapping from Tasks to Requirements.
func (k DocumentKind) Next() DocumentKind {
	return DocumentKind((int(k) + 1) % len(DocumentKinds))
}

func (k DocumentKind) String() string { return k.Title() }

// DocumentStatus tells why a document does or does not have content.
type DocumentStatus int

const (
	// Present means the document was read successfully.
	Present DocumentStatus = iota
	// Missing means no path was recorded at discovery.
	Missing
	// Unreadable means a path was recorded but reading it failed.
	Unreadable
)

// Document is the loaded text of one spec document.
type Document struct {
	Kind    DocumentKind
	Content string
	Status  DocumentStatus
	Err     error
}

// Found reports whether the document has content to display.
func (d Document) Found() bool { return d.Status == Present }

// Lines splits the content into display lines. A trailing newline does not
// produce an extra empty line and carriage returns are dropped.
func (d Document) Lines() []string {
	return SplitLines(d.Content)
}

// SplitLines splits s on newlines without a trailing empty element.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
