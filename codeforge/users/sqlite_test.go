package users

import (
	"context"
	"testing"

	"github.com/codeforge/server/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_FirstLoginCreatesUser(t *testing.T) {
	repo := newTestRepository(t)

	user, err := repo.FindOrCreateByGoogle(
		context.Background(), "google-123", "dev@example.com", "Dev One", "https://example.com/a.png",
	)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "dev@example.com", user.Email)
	assert.Equal(t, "Dev One", user.Name)
	require.NotNil(t, user.Avatar)
	assert.Equal(t, "https://example.com/a.png", *user.Avatar)
}

func TestSQLiteRepository_RepeatLoginRefreshesProfile(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.FindOrCreateByGoogle(ctx, "google-123", "dev@example.com", "Old Name", "")
	require.NoError(t, err)

	second, err := repo.FindOrCreateByGoogle(ctx, "google-123", "dev@example.com", "New Name", "https://example.com/new.png")
	require.NoError(t, err)

	// same identity, refreshed profile
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "New Name", second.Name)
	require.NotNil(t, second.Avatar)
	assert.Equal(t, "https://example.com/new.png", *second.Avatar)
}

func TestSQLiteRepository_FindByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.FindOrCreateByGoogle(ctx, "google-123", "dev@example.com", "Dev", "")
	require.NoError(t, err)

	fetched, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, fetched.Email)

	_, err = repo.FindByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
