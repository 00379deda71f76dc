// Package sqlite persists store snapshots in a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure-Go driver registered as "sqlite"
	_ "modernc.org/sqlite"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/storage"
)

// Config holds SQLite settings
type Config struct {
	// Path is the database file; it is created if missing
	Path string
}

// DefaultConfig returns the default SQLite configuration
func DefaultConfig() Config {
	return Config{Path: "data/academy.db"}
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshot (
	namespace TEXT PRIMARY KEY,
	blob BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// Storage is a SQLite-backed implementation of the persistence gateway
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at cfg.Path, creating its parent
// directory if needed, and ensures the schema exists
func New(cfg Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}
	if err := InitDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: snapshot table exists, WAL mode enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Ensure Storage implements the interface
var _ storage.Gateway = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context, namespace string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT blob FROM snapshot WHERE namespace = ?", namespace,
	).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (s *Storage) Save(ctx context.Context, namespace string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshot (namespace, blob, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		namespace, blob, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *Storage) Delete(ctx context.Context, namespace string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM snapshot WHERE namespace = ?", namespace)
	return err
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}
