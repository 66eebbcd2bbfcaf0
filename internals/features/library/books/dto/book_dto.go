package dto

import (
	"booklibrary_backend/internals/features/library/books/model"
)

// ============================
// Response DTO
// ============================

type BookDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
	Status string `json:"status"`
}

// ============================
// Create Request DTO
// ============================

// CreateBookRequest doubles as the add-form state. Presence is the only check:
// whitespace counts as a value and year stays free text.
type CreateBookRequest struct {
	Title  string `json:"title" form:"title" validate:"required"`
	Author string `json:"author" form:"author" validate:"required"`
	Year   string `json:"year" form:"year" validate:"required"`
	Genre  string `json:"genre" form:"genre" validate:"required"`
	Read   bool   `json:"read" form:"read"`
}

// RemoveMatchingRequest selects every record with exactly these field values.
type RemoveMatchingRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// ============================
// Converter
// ============================

func ToBookDTO(m model.Book) BookDTO {
	return BookDTO{
		ID:     m.ID,
		Title:  m.Title,
		Author: m.Author,
		Year:   m.Year,
		Genre:  m.Genre,
		Read:   m.Read,
		Status: m.Status(),
	}
}

func ToBookDTOs(books []model.Book) []BookDTO {
	out := make([]BookDTO, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookDTO(b))
	}
	return out
}

func (r RemoveMatchingRequest) ToModel() model.Book {
	return model.Book{
		Title:  r.Title,
		Author: r.Author,
		Year:   r.Year,
		Genre:  r.Genre,
		Read:   r.Read,
	}
}
