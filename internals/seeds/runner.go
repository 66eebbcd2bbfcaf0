package seeds

import (
	"context"
	"log"

	"booklibrary_backend/internals/features/library/books/service"
	books "booklibrary_backend/internals/seeds/books"
)

// RunAllSeeds applies the book seed file when one is configured.
func RunAllSeeds(ctx context.Context, svc *service.LibraryService, bookSeedFile string) {
	if bookSeedFile == "" {
		return
	}

	//* Books
	n, err := books.SeedBooksFromJSON(ctx, svc, bookSeedFile)
	if err != nil {
		log.Printf("❌ Book seed failed: %v", err)
		return
	}
	log.Printf("🌱 Seeded %d book(s)", n)
}
