package sessions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/codeforge/server/codeforge/users"
	"github.com/codeforge/server/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func createTestUser(t *testing.T, db *sql.DB) *users.User {
	t.Helper()

	user, err := users.NewSQLiteRepository(db).FindOrCreateByGoogle(
		context.Background(), "google-123", "dev@example.com", "Dev", "",
	)
	require.NoError(t, err)

	return user
}

func TestGenerateSessionID(t *testing.T) {
	first, err := GenerateSessionID()
	require.NoError(t, err)

	second, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	repo := NewSQLiteRepository(db)

	created, err := repo.Create(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Len(t, created.ID, 64)
	assert.Equal(t, user.ID, created.UserID)
	assert.True(t, created.ExpiresAt.After(time.Now()))

	fetched, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, user.ID, fetched.UserID)
}

func TestSQLiteRepository_GetMissingReturnsErrNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteRepository(db)

	_, err := repo.Get(context.Background(), "does-not-exist")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_ExpiredSessionReadsAsAbsent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	repo := NewSQLiteRepository(db)

	created, err := repo.Create(context.Background(), user.ID)
	require.NoError(t, err)

	// push the session into the past
	_, err = db.Exec(
		"UPDATE sessions SET expires_at = ? WHERE id = ?",
		time.Now().UTC().Add(-time.Hour), created.ID,
	)
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the stale row is removed on read
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sessions WHERE id = ?", created.ID).Scan(&count))
	assert.Zero(t, count)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	repo := NewSQLiteRepository(db)

	created, err := repo.Create(context.Background(), user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err = repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_DeleteExpired(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	repo := NewSQLiteRepository(db)

	fresh, err := repo.Create(context.Background(), user.ID)
	require.NoError(t, err)

	stale, err := repo.Create(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = db.Exec(
		"UPDATE sessions SET expires_at = ? WHERE id = ?",
		time.Now().UTC().Add(-time.Hour), stale.ID,
	)
	require.NoError(t, err)

	deleted, err := repo.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.Get(context.Background(), fresh.ID)
	assert.NoError(t, err)
}
