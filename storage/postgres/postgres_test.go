package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/flagshim/storage"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestEnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS flag_cache").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, New(db).EnsureSchema(context.Background()))
}

func TestGetItem_Hit(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT value FROM flag_cache WHERE key = \\$1").
		WithArgs("my-app:repo").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"b":2}`))

	v, ok, err := New(db).GetItem(context.Background(), "my-app:repo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"b":2}`, v)
}

func TestGetItem_Miss(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT value FROM flag_cache WHERE key = \\$1").
		WithArgs("my-app:repo").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := New(db).GetItem(context.Background(), "my-app:repo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetItem_Error(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection lost")
	mock.ExpectQuery("SELECT value FROM flag_cache").WillReturnError(boom)

	_, _, err := New(db).GetItem(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestSetItem_Upserts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO flag_cache .+ ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("my-prefix:repo", `{"a":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, New(db).SetItem(context.Background(), "my-prefix:repo", `{"a":1}`))
}

func TestAdapterSwallowsWriteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("read-only transaction")
	mock.ExpectExec("INSERT INTO flag_cache").WillReturnError(boom)

	events := make(chan storage.Event, 1)
	a := storage.NewAdapter("my-prefix", New(db), storage.WithEvents(events))

	assert.NoError(t, a.Save(context.Background(), "repo", map[string]any{"a": 1}))
	ev := <-events
	assert.ErrorIs(t, ev.Error, boom)
}
