package vault

import (
	"path"
	"strings"
	"time"
)

// MarkdownExt is the extension of vault documents.
const MarkdownExt = ".md"

// Document describes one note.
type Document struct {
	Path    string
	ModTime time.Time
}

// Name returns the file name without folder or extension.
func (d Document) Name() string {
	return strings.TrimSuffix(path.Base(d.Path), MarkdownExt)
}

// CleanPath normalizes p to a slash-separated path relative to the root.
func CleanPath(p string) string {
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}

// Join builds a document path from folder and name, adding the markdown
// extension when missing.
func Join(folder, name string) string {
	if !strings.HasSuffix(name, MarkdownExt) {
		name += MarkdownExt
	}
	return CleanPath(path.Join(folder, name))
}
