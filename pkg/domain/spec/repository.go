package spec

import "context"

// Repository discovers specs and loads their documents.
type Repository interface {
	Discover(ctx context.Context) (Collection, error)
	LoadDocument(s Spec, kind DocumentKind) Document
}
