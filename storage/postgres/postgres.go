// Package postgres provides a PostgreSQL-backed storage primitive.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/spetersoncode/flagshim/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS flag_cache (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	queryGet = `SELECT value FROM flag_cache WHERE key = $1`
	querySet = `INSERT INTO flag_cache (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Primitive persists cache records in a PostgreSQL table.
type Primitive struct {
	db *sql.DB
}

var _ storage.Primitive = (*Primitive)(nil)

// Open connects to the database at dsn and ensures the cache table exists.
func Open(ctx context.Context, dsn string) (*Primitive, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	p := New(db)
	if err := p.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}

// New wraps an open database. Call EnsureSchema before first use unless the
// table is managed elsewhere.
func New(db *sql.DB) *Primitive {
	return &Primitive{db: db}
}

// EnsureSchema creates the cache table if it does not exist.
func (p *Primitive) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create flag_cache table: %w", err)
	}
	return nil
}

// GetItem reads the value stored under key.
func (p *Primitive) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem upserts the value stored under key.
func (p *Primitive) SetItem(ctx context.Context, key, value string) error {
	if _, err := p.db.ExecContext(ctx, querySet, key, value); err != nil {
		return fmt.Errorf("postgres set %q: %w", key, err)
	}
	return nil
}

// Close closes the database handle.
func (p *Primitive) Close() error {
	return p.db.Close()
}
