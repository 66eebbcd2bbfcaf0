package service

import (
	"fmt"
	"strings"

	"booklibrary_backend/internals/features/library/books/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const EmptyLibraryMessage = "Your library is empty. Please add some books!"

type SearchField string

const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
)

var SearchFields = []SearchField{SearchByTitle, SearchByAuthor}

// ParseSearchField accepts "title" or "author" in any case; empty means title.
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SearchByTitle):
		return SearchByTitle, nil
	case string(SearchByAuthor):
		return SearchByAuthor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSearchField, s)
}

func (f SearchField) Label() string {
	if f == SearchByAuthor {
		return "Author"
	}
	return "Title"
}

func (f SearchField) valueOf(b model.Book) string {
	if f == SearchByAuthor {
		return b.Author
	}
	return b.Title
}

type SearchResult struct {
	Field    SearchField
	Query    string
	Books    []model.Book
	NotFound string
}

// Search returns the records whose field contains query, ignoring case.
// An empty query matches nothing.
func Search(books []model.Book, field SearchField, query string) SearchResult {
	res := SearchResult{Field: field, Query: query, Books: []model.Book{}}
	if query == "" {
		return res
	}

	needle := fold(query)
	for _, b := range books {
		if strings.Contains(fold(field.valueOf(b)), needle) {
			res.Books = append(res.Books, b)
		}
	}
	if len(res.Books) == 0 {
		res.NotFound = fmt.Sprintf("No books found matching '%s' in the %s field.", query, field.Label())
	}
	return res
}

// fold builds a fresh Caser per call; cases.Caser is not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

type Stats struct {
	Total      int
	Read       int
	Percentage float64
}

func ComputeStats(books []model.Book) Stats {
	st := Stats{Total: len(books)}
	for _, b := range books {
		if b.Read {
			st.Read++
		}
	}
	if st.Total > 0 {
		st.Percentage = float64(st.Read) / float64(st.Total) * 100
	}
	return st
}

func (s Stats) PercentageRead() string {
	return fmt.Sprintf("%.1f%%", s.Percentage)
}
