package cache

import (
	"context"
	"sync"

	"github.com/emrgen/portfolio/internal/content"
)

var _ ContentCache = (*MemoryContentCache)(nil)

// MemoryContentCache is a process-local ContentCache used in tests and
// when no redis address is configured.
type MemoryContentCache struct {
	mu  sync.Mutex
	doc *content.Document
}

func NewMemoryContentCache() *MemoryContentCache {
	return &MemoryContentCache{}
}

func (m *MemoryContentCache) GetDocument(ctx context.Context) (*content.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc, nil
}

func (m *MemoryContentCache) SetDocument(ctx context.Context, doc *content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *doc
	m.doc = &copied
	return nil
}

func (m *MemoryContentCache) DeleteDocument(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = nil
	return nil
}
