package cache

import (
	"context"

	"github.com/emrgen/portfolio/internal/content"
)

// ContentCache holds the published unified document for the public
// read path. Everything here is best-effort: a cache error never fails
// a load or a save.
type ContentCache interface {
	// GetDocument gets the cached document, or nil on a miss.
	GetDocument(ctx context.Context) (*content.Document, error)
	// SetDocument caches the document.
	SetDocument(ctx context.Context, doc *content.Document) error
	// DeleteDocument drops the cached document.
	DeleteDocument(ctx context.Context) error
}
