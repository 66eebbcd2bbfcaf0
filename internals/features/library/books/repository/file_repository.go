package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"booklibrary_backend/internals/features/library/books/model"

	"github.com/google/renameio/v2"
)

// FileRepository keeps the collection in a single JSON file.
type FileRepository struct {
	path string
	perm os.FileMode
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path, perm: 0o644}
}

func (r *FileRepository) Name() string {
	return "file:" + r.path
}

func (r *FileRepository) Path() string {
	return r.path
}

// Load returns an empty collection when the file does not exist yet.
func (r *FileRepository) Load(ctx context.Context) ([]model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Book{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	books, err := decodeBooks(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.path, err)
	}
	return books, nil
}

// Save replaces the file atomically (temp file + rename).
func (r *FileRepository) Save(ctx context.Context, books []model.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeBooks(books)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := renameio.WriteFile(r.path, data, r.perm); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
