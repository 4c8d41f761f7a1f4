package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"notes-copilot/internal/vault"
	pkgLog "notes-copilot/pkg/log"
)

type implStore struct {
	fs afero.Fs
	l  pkgLog.Logger
}

// New creates a vault backed by fsys. Paths are resolved against its root.
func New(fsys afero.Fs, l pkgLog.Logger) vault.Store {
	return &implStore{fs: fsys, l: l}
}

// NewDir creates a vault rooted at dir on the local disk.
func NewDir(dir string, l pkgLog.Logger) vault.Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), l)
}

func (s *implStore) List(ctx context.Context, folder string) ([]vault.Document, error) {
	root := "/" + vault.CleanPath(folder)

	docs := []vault.Document{}
	if ok, err := afero.DirExists(s.fs, root); err != nil || !ok {
		return docs, nil
	}

	err := afero.Walk(s.fs, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), vault.MarkdownExt) {
			return nil
		}
		docs = append(docs, vault.Document{
			Path:    vault.CleanPath(filepath.ToSlash(p)),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault fs: list %s: %w", folder, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func (s *implStore) Read(ctx context.Context, p string) (string, error) {
	clean := vault.CleanPath(p)
	if clean == "" || clean == "." {
		return "", vault.ErrInvalidPath
	}

	data, err := afero.ReadFile(s.fs, "/"+clean)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", vault.ErrNotFound, clean)
		}
		return "", fmt.Errorf("vault fs: read %s: %w", clean, err)
	}
	return string(data), nil
}

func (s *implStore) Write(ctx context.Context, p, content string) error {
	clean := vault.CleanPath(p)
	if clean == "" || clean == "." {
		return vault.ErrInvalidPath
	}

	if dir := path.Dir(clean); dir != "." {
		if err := s.fs.MkdirAll("/"+dir, 0o755); err != nil {
			return fmt.Errorf("vault fs: create folder %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(s.fs, "/"+clean, []byte(content), 0o644); err != nil {
		return fmt.Errorf("vault fs: write %s: %w", clean, err)
	}

	s.l.Debug(ctx, "vault fs: document written", "path", clean, "bytes", len(content))
	return nil
}
