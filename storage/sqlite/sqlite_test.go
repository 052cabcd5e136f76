package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/flagshim/storage"
)

func openMemory(t *testing.T) *Primitive {
	t.Helper()
	p, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestPrimitive_GetSet(t *testing.T) {
	ctx := context.Background()
	p := openMemory(t)

	_, ok, err := p.GetItem(ctx, "my-app:repo")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetItem(ctx, "my-app:repo", `{"a":1}`))
	require.NoError(t, p.SetItem(ctx, "my-app:repo", `{"a":2}`))

	v, ok, err := p.GetItem(ctx, "my-app:repo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":2}`, v)
}

func TestPrimitive_Keys(t *testing.T) {
	ctx := context.Background()
	p := openMemory(t)

	require.NoError(t, p.SetItem(ctx, "b:repo", "1"))
	require.NoError(t, p.SetItem(ctx, "a:sessionId", "2"))
	require.NoError(t, p.SetItem(ctx, "a:repo", "3"))

	keys, err := p.Keys(ctx, "a:")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:repo", "a:sessionId"}, keys)
}

func TestPrimitive_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "flags.db")

	p, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, p.SetItem(ctx, "my-app:repo", "[]"))
	require.NoError(t, p.Close())

	p, err = Open(ctx, path)
	require.NoError(t, err)
	defer p.Close()

	v, ok, err := p.GetItem(ctx, "my-app:repo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestPrimitive_Closed(t *testing.T) {
	ctx := context.Background()
	p := openMemory(t)
	require.NoError(t, p.Close())

	_, _, err := p.GetItem(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, p.SetItem(ctx, "k", "v"), storage.ErrClosed)
}

func TestPrimitive_BehindAdapter(t *testing.T) {
	ctx := context.Background()
	a := storage.NewAdapter("my-app", openMemory(t))

	require.NoError(t, a.Save(ctx, "repo", map[string]any{"name": "t", "enabled": true}))

	v, err := a.Get(ctx, "repo")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "t", "enabled": true}, v)
}
