package generations

import (
	"context"
	"testing"
	"time"

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

func testParams(prompt string) CreateParams {
	return CreateParams{
		Prompt:   prompt,
		Language: "Go",
		GeneratedCode: GeneratedFiles{
			{Filename: "main.go", Content: "package main", Language: "go"},
		},
		Explanation: "A starting point",
	}
}

func TestSQLiteRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	gen, err := repo.Create(context.Background(), testParams("Parse a CSV file"))
	require.NoError(t, err)

	assert.NotEmpty(t, gen.ID)
	assert.False(t, gen.CreatedAt.IsZero())
	assert.Nil(t, gen.UserID)
	assert.Nil(t, gen.Framework)
}

func TestSQLiteRepository_CreateThenGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	params := testParams("Parse a CSV file")
	params.Framework = "stdlib"
	params.GeneratedCode = GeneratedFiles{
		{Filename: "parser.go", Content: "package parser\n\nfunc Parse() {}", Language: "go"},
		{Filename: "parser_test.go", Content: "package parser", Language: "go"},
	}

	created, err := repo.Create(context.Background(), params)
	require.NoError(t, err)

	fetched, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	// the serialized text column must reconstruct the exact structure
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Prompt, fetched.Prompt)
	assert.Equal(t, created.GeneratedCode, fetched.GeneratedCode)
	assert.Equal(t, created.Explanation, fetched.Explanation)
	require.NotNil(t, fetched.Framework)
	assert.Equal(t, "stdlib", *fetched.Framework)
}

func TestSQLiteRepository_GetMissingReturnsErrNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "b8f6dbcd-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var ids []string

	for _, prompt := range []string{"first", "second", "third"} {
		gen, err := repo.Create(ctx, testParams(prompt))
		require.NoError(t, err)

		ids = append(ids, gen.ID)

		// created_at must differ for the ordering to be observable
		time.Sleep(5 * time.Millisecond)
	}

	listed, err := repo.List(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}

func TestSQLiteRepository_ListHonorsLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, testParams("prompt"))
		require.NoError(t, err)
	}

	listed, err := repo.List(ctx, 2, "")
	require.NoError(t, err)

	assert.Len(t, listed, 2)
}

func TestSQLiteRepository_ListFiltersByUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	mine := testParams("mine")
	mine.UserID = "user-a"
	_, err := repo.Create(ctx, mine)
	require.NoError(t, err)

	theirs := testParams("theirs")
	theirs.UserID = "user-b"
	_, err = repo.Create(ctx, theirs)
	require.NoError(t, err)

	_, err = repo.Create(ctx, testParams("anonymous"))
	require.NoError(t, err)

	listed, err := repo.List(ctx, 10, "user-a")
	require.NoError(t, err)

	require.Len(t, listed, 1)
	assert.Equal(t, "mine", listed[0].Prompt)
}
