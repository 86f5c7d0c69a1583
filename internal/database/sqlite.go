// Package database provides the local key-value blob store backing the
// entity repositories.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)
`

// DB wraps the embedded SQLite handle used for local persistence. Each
// entity collection is serialized as a single JSON array stored under its
// logical key.
type DB struct {
	sqlDB *sql.DB
}

// NewDB opens the blob store at path, creating it if necessary. Use
// ":memory:" for an ephemeral store.
func NewDB(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// The store is accessed by a single caller at a time; one connection
	// keeps an in-memory path pointing at one database.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}

	return &DB{sqlDB: sqlDB}, nil
}

// GetBlob retrieves the blob stored under key. The second return value
// reports whether the key was present.
func (db *DB) GetBlob(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := db.sqlDB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// PutBlob stores the blob under key, replacing any existing value. The
// write is synchronous; when it returns the value is durable.
func (db *DB) PutBlob(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := db.sqlDB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// HealthCheck performs a simple health check on the store
func (db *DB) HealthCheck(ctx context.Context) error {
	if _, err := db.sqlDB.ExecContext(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// Close closes the underlying database handle
func (db *DB) Close() error {
	if db.sqlDB != nil {
		return db.sqlDB.Close()
	}
	return nil
}
