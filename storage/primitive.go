package storage

import "context"

// Primitive is the raw asynchronous key-value store the adapter persists
// through. Values are opaque strings; the adapter owns encoding.
// Implementations must be safe for concurrent use.
type Primitive interface {
	// GetItem reads a value. Returns "", false, nil if the key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem writes a value, replacing any existing one.
	SetItem(ctx context.Context, key, value string) error
}

// NamespacedKey joins a namespace prefix and a repository key as
// "<prefix>:<key>".
func NamespacedKey(prefix, key string) string {
	return prefix + ":" + key
}
