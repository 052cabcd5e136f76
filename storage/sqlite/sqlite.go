// Package sqlite provides a SQLite-backed storage primitive.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/spetersoncode/flagshim/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS flag_cache (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Primitive persists cache records in a SQLite table.
type Primitive struct {
	db *sql.DB
}

var _ storage.Primitive = (*Primitive)(nil)

// Open opens the database at path, creating the cache table if needed.
// The path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Primitive, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := ":memory:"
	if path != ":memory:" {
		dsn = "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" to one database and serializes
	// writers.
	db.SetMaxOpenConns(1)

	p, err := New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}

// New wraps an open database, creating the cache table if needed.
func New(ctx context.Context, db *sql.DB) (*Primitive, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create flag_cache table: %w", err)
	}
	return &Primitive{db: db}, nil
}

// GetItem reads the value stored under key.
func (p *Primitive) GetItem(ctx context.Context, key string) (string, bool, error) {
	if p.db == nil {
		return "", false, storage.ErrClosed
	}
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM flag_cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite get %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem upserts the value stored under key.
func (p *Primitive) SetItem(ctx context.Context, key, value string) error {
	if p.db == nil {
		return storage.ErrClosed
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO flag_cache (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite set %q: %w", key, err)
	}
	return nil
}

// Keys returns every stored key with the given prefix, sorted.
func (p *Primitive) Keys(ctx context.Context, prefix string) ([]string, error) {
	if p.db == nil {
		return nil, storage.ErrClosed
	}
	rows, err := p.db.QueryContext(ctx,
		`SELECT key FROM flag_cache WHERE substr(key, 1, length(?)) = ? ORDER BY key`,
		prefix, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("sqlite keys: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database handle.
func (p *Primitive) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
