package blob

import (
	"context"
	"io"
)

// Store uploads files and hands back durable public URLs. The content
// core only ever stores and forwards the resulting URL strings.
type Store interface {
	// Upload writes the object at key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
