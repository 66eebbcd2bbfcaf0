package books

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"booklibrary_backend/internals/features/library/books/repository"
	"booklibrary_backend/internals/features/library/books/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedService(t *testing.T) *service.LibraryService {
	t.Helper()
	repo := repository.NewFileRepository(filepath.Join(t.TempDir(), "library.txt"))
	return service.NewLibraryService(repo, service.NoopPublisher{})
}

func TestSeedBooksFromJSON_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSeedService(t)

	n, err := SeedBooksFromJSON(ctx, svc, "data_books.json")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = SeedBooksFromJSON(ctx, svc, "data_books.json")
	require.NoError(t, err)
	assert.Zero(t, n)

	lib, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, lib.Len())
	assert.Equal(t, "The Hobbit", lib.Books()[0].Title)
}

func TestSeedBooksFromJSON_SkipsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"title":"Dune","author":"","year":"1965","genre":"SF"},{"title":"Emma","author":"Jane Austen","year":"1815","genre":"Romance"}]`),
		0o644))

	n, err := SeedBooksFromJSON(context.Background(), newSeedService(t), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedBooksFromJSON_MissingFile(t *testing.T) {
	_, err := SeedBooksFromJSON(context.Background(), newSeedService(t), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
