package books

import (
	"context"
	"fmt"
	"log"
	"os"

	"booklibrary_backend/internals/features/library/books/dto"
	"booklibrary_backend/internals/features/library/books/model"
	"booklibrary_backend/internals/features/library/books/service"

	"github.com/bytedance/sonic"
)

// SeedBooksFromJSON adds every book in filePath that the library does not
// already hold with the same field values. It returns how many were added.
func SeedBooksFromJSON(ctx context.Context, svc *service.LibraryService, filePath string) (int, error) {
	log.Println("📥 Reading seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []dto.CreateBookRequest
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	lib, err := svc.Load(ctx)
	if err != nil {
		return 0, err
	}
	existing := lib.Books()

	added := 0
	for _, seed := range seeds {
		candidate := model.Book{
			Title:  seed.Title,
			Author: seed.Author,
			Year:   seed.Year,
			Genre:  seed.Genre,
			Read:   seed.Read,
		}
		if contains(existing, candidate) {
			log.Printf("ℹ️ %q already in library, skipping", seed.Title)
			continue
		}

		book, err := svc.Add(ctx, seed)
		if err != nil {
			log.Printf("❌ Failed to seed %q: %v", seed.Title, err)
			continue
		}
		existing = append(existing, book)
		added++
		log.Printf("✅ Seeded %q", book.Title)
	}
	return added, nil
}

func contains(books []model.Book, b model.Book) bool {
	for _, x := range books {
		if x.SameFields(b) {
			return true
		}
	}
	return false
}
