// Package repository persists the whole book collection as one JSON document.
//
// Every Save replaces the previous snapshot. There is no locking: two writers
// interleaving load and save will lose the earlier write (last writer wins).
package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"booklibrary_backend/internals/features/library/books/model"

	"github.com/bytedance/sonic"
)

var ErrCorruptData = errors.New("library data is not a valid JSON array of books")

type Repository interface {
	Load(ctx context.Context) ([]model.Book, error)
	Save(ctx context.Context, books []model.Book) error
	Name() string
}

func encodeBooks(books []model.Book) ([]byte, error) {
	if books == nil {
		books = []model.Book{}
	}
	data, err := sonic.ConfigStd.MarshalIndent(books, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode books: %w", err)
	}
	return data, nil
}

func decodeBooks(data []byte) ([]model.Book, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Book{}, nil
	}
	var books []model.Book
	if err := sonic.ConfigStd.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}
