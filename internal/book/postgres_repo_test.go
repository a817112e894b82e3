package book

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/db"
	"libraryapi/internal/platform/postgres"
)

func setupBookTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("set TEST_DB_DSN to run postgres integration tests")
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, dsn, 2*time.Second)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	conn := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Up(conn))

	_, err = pool.Exec(ctx, "TRUNCATE books")
	require.NoError(t, err)
	return pool
}

func TestPostgresRepo_Lifecycle(t *testing.T) {
	pool := setupBookTestDB(t)
	repo := NewPostgresRepo(pool, 2*time.Second)
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.Create(ctx, newBook())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = service.Create(ctx, newBook())
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	// The unique index rejects a duplicate even when the existence check is skipped.
	_, err = repo.Insert(ctx, newBook())
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	got, found, err := service.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Livro", got.Title)

	_, found, err = service.FindByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, found)

	page, err := service.Find(ctx, Filter{Title: "livro"}, PageRequest{Index: 0, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)

	page, err = service.Find(ctx, Filter{Title: "zzz"}, PageRequest{Index: 0, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)

	page, err = service.Find(ctx, Filter{Title: "%"}, PageRequest{Index: 0, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)

	got.Author = "Outro Autor"
	updated, err := service.Update(ctx, &got)
	require.NoError(t, err)
	assert.Equal(t, "Outro Autor", updated.Author)

	require.NoError(t, service.Delete(ctx, &updated))
	assert.ErrorIs(t, repo.Delete(ctx, updated.ID), ErrNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "livro", escapeLike("livro"))
}
