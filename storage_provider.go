package flagshim

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/flagshim/storage"
)

// Repository keys used by the flag client.
const (
	RepoKey      = "repo"
	SessionIDKey = "sessionId"
)

// StorageProvider is the persistence contract of the flag client.
// Get returns nil for an absent value. Implementations may be supplied in
// Config.StorageProvider to replace the default storage.Adapter.
type StorageProvider interface {
	Get(ctx context.Context, name string) (any, error)
	Save(ctx context.Context, name string, data any) error
}

var _ StorageProvider = (*storage.Adapter)(nil)

// Load reads name from sp and decodes it into T. It returns false when the
// value is absent.
func Load[T any](ctx context.Context, sp StorageProvider, name string) (T, bool, error) {
	var zero T
	v, err := sp.Get(ctx, name)
	if err != nil || v == nil {
		return zero, false, err
	}
	if typed, ok := v.(T); ok {
		return typed, true, nil
	}

	// Decoded JSON comes back as generic maps; re-encode into T.
	raw, err := json.Marshal(v)
	if err != nil {
		return zero, false, fmt.Errorf("load %q: %w", name, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, false, fmt.Errorf("load %q: %w", name, err)
	}
	return out, true, nil
}
