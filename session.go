package flagshim

import (
	"context"

	"github.com/google/uuid"
)

// EnsureSessionID returns the session id persisted in sp, creating and
// saving a new one when none is stored. When saving fails and sp reports it,
// the new id is returned together with the error.
func EnsureSessionID(ctx context.Context, sp StorageProvider) (string, error) {
	id, ok, err := Load[string](ctx, sp, SessionIDKey)
	if err == nil && ok && id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := sp.Save(ctx, SessionIDKey, id); err != nil {
		return id, err
	}
	return id, nil
}
