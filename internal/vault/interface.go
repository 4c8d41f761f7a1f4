package vault

import "context"

// Store is the note vault. Paths are slash-separated and relative to the
// vault root.
type Store interface {
	// List returns markdown documents under folder, recursively, sorted by
	// path. A missing folder yields an empty list.
	List(ctx context.Context, folder string) ([]Document, error)

	// Read returns a document's content, or ErrNotFound.
	Read(ctx context.Context, path string) (string, error)

	// Write creates or replaces a document, creating parent folders.
	Write(ctx context.Context, path, content string) error
}
