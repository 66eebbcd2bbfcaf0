// Package service runs one load → mutate → save cycle per interaction.
//
// Nothing is cached between calls: each operation reloads the collection from
// the repository and writes the full collection back after a mutation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"booklibrary_backend/internals/features/library/books/dto"
	"booklibrary_backend/internals/features/library/books/model"
	"booklibrary_backend/internals/features/library/books/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

var validateBook = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Library is the working copy of the collection for a single interaction.
type Library struct {
	books []model.Book
}

func (l *Library) Books() []model.Book {
	return l.books
}

func (l *Library) Len() int {
	return len(l.books)
}

type LibraryService struct {
	repo      repository.Repository
	publisher EventPublisher
	newID     func() string
}

func NewLibraryService(repo repository.Repository, publisher EventPublisher) *LibraryService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &LibraryService{
		repo:      repo,
		publisher: publisher,
		newID:     uuid.NewString,
	}
}

func (s *LibraryService) StoreName() string {
	return s.repo.Name()
}

// Load reads the collection fresh from the repository. It never writes:
// records stored without an id get a content-derived id in memory, which
// the next mutation persists along with the rest of the collection.
func (s *LibraryService) Load(ctx context.Context) (*Library, error) {
	books, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	fillLegacyIDs(books)
	return &Library{books: books}, nil
}

// BackfillIDs persists ids for records stored without one. It runs once at
// startup so request handlers stay read-only.
func (s *LibraryService) BackfillIDs(ctx context.Context) (int, error) {
	books, err := s.repo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load library: %w", err)
	}
	assigned := fillLegacyIDs(books)
	if assigned == 0 {
		return 0, nil
	}
	if err := s.repo.Save(ctx, books); err != nil {
		return 0, fmt.Errorf("save library: %w", err)
	}
	log.Printf("[STORE] assigned ids to %d record(s) in %s", assigned, s.repo.Name())
	return assigned, nil
}

// legacyIDSpace namespaces ids derived for records written without one.
var legacyIDSpace = uuid.MustParse("6f1c9a52-3b7e-4d2a-9c61-0b8e2f4a7d13")

// fillLegacyIDs gives every id-less record a UUIDv5 of its position and
// fields, so repeated reads of an unchanged store agree on the ids.
func fillLegacyIDs(books []model.Book) int {
	assigned := 0
	for i := range books {
		if books[i].ID != "" {
			continue
		}
		b := books[i]
		key := fmt.Sprintf("%d\x00%s\x00%s\x00%s\x00%s\x00%t", i, b.Title, b.Author, b.Year, b.Genre, b.Read)
		books[i].ID = uuid.NewSHA1(legacyIDSpace, []byte(key)).String()
		assigned++
	}
	return assigned
}

// Add appends a new record after a presence check on the text fields.
// On a validation failure the repository is not touched.
func (s *LibraryService) Add(ctx context.Context, req dto.CreateBookRequest) (model.Book, error) {
	if err := validateCreate(req); err != nil {
		return model.Book{}, err
	}

	lib, err := s.Load(ctx)
	if err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		ID:     s.newID(),
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Genre:  req.Genre,
		Read:   req.Read,
	}
	lib.books = append(lib.books, book)

	if err := s.repo.Save(ctx, lib.books); err != nil {
		return model.Book{}, fmt.Errorf("save library: %w", err)
	}
	log.Printf("[STORE] added %q by %q (%d total)", book.Title, book.Author, lib.Len())

	s.publish(ctx, model.NewBookEvent(model.BookAdded, book))
	return book, nil
}

// Remove drops the record with the given id.
func (s *LibraryService) Remove(ctx context.Context, id string) (model.Book, error) {
	removed, err := s.removeWhere(ctx, func(b model.Book) bool { return b.ID == id })
	if err != nil {
		return model.Book{}, err
	}
	return removed[0], nil
}

// RemoveMatching drops every record structurally equal to target, so
// identical duplicates all go at once.
func (s *LibraryService) RemoveMatching(ctx context.Context, target model.Book) ([]model.Book, error) {
	return s.removeWhere(ctx, target.SameFields)
}

func (s *LibraryService) removeWhere(ctx context.Context, match func(model.Book) bool) ([]model.Book, error) {
	lib, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]model.Book, 0, lib.Len())
	var removed []model.Book
	for _, b := range lib.books {
		if match(b) {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	if len(removed) == 0 {
		return nil, ErrBookNotFound
	}

	if err := s.repo.Save(ctx, kept); err != nil {
		return nil, fmt.Errorf("save library: %w", err)
	}
	log.Printf("[STORE] removed %d record(s) (%d left)", len(removed), len(kept))

	for _, b := range removed {
		s.publish(ctx, model.NewBookEvent(model.BookRemoved, b))
	}
	return removed, nil
}

// publish never fails the interaction; the mutation is already saved.
func (s *LibraryService) publish(ctx context.Context, event model.BookEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[EVENT] publish %s for %q failed: %v", event.Type, event.Book.ID, err)
	}
}

func validateCreate(req dto.CreateBookRequest) error {
	err := validateBook.Struct(&req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
