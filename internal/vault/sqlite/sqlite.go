package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"notes-copilot/internal/vault"
	pkgLog "notes-copilot/pkg/log"
)

// Store implements vault.Store on a local SQLite database.
type Store struct {
	db *sqlx.DB
	l  pkgLog.Logger
}

type documentRow struct {
	Path      string    `db:"path"`
	UpdatedAt time.Time `db:"updated_at"`
}

// New opens (or creates) a SQLite database at dbPath, enables WAL mode,
// and runs any pending schema migrations.
func New(dbPath string, l pkgLog.Logger) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, l: l}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Store) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// List returns documents whose path lies under folder.
func (s *Store) List(ctx context.Context, folder string) ([]vault.Document, error) {
	prefix := vault.CleanPath(folder)

	var rows []documentRow
	var err error
	if prefix == "" || prefix == "." {
		err = s.db.SelectContext(ctx, &rows,
			`SELECT path, updated_at FROM documents WHERE path LIKE '%.md' ORDER BY path`)
	} else {
		err = s.db.SelectContext(ctx, &rows,
			`SELECT path, updated_at FROM documents
			 WHERE substr(path, 1, ?) = ? AND path LIKE '%.md'
			 ORDER BY path`,
			len(prefix)+1, prefix+"/")
	}
	if err != nil {
		return nil, fmt.Errorf("listing documents under %q: %w", folder, err)
	}

	docs := make([]vault.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, vault.Document{Path: r.Path, ModTime: r.UpdatedAt})
	}
	return docs, nil
}

// Read returns the content stored at path.
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	clean := vault.CleanPath(path)

	var content string
	err := s.db.GetContext(ctx, &content, `SELECT content FROM documents WHERE path = ?`, clean)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", vault.ErrNotFound, clean)
	}
	if err != nil {
		return "", fmt.Errorf("reading document %q: %w", clean, err)
	}
	return content, nil
}

// Write inserts or replaces the document at path.
func (s *Store) Write(ctx context.Context, path, content string) error {
	clean := vault.CleanPath(path)
	if clean == "" || clean == "." || strings.HasSuffix(clean, "/") {
		return vault.ErrInvalidPath
	}

	const query = `
		INSERT INTO documents (id, path, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content    = excluded.content,
			updated_at = excluded.updated_at`

	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), clean, content, now, now); err != nil {
		return fmt.Errorf("writing document %q: %w", clean, err)
	}

	s.l.Debug(ctx, "vault sqlite: document written", "path", clean, "bytes", len(content))
	return nil
}
