package dto

// ============================
// Search / Statistics DTO
// ============================

type SearchResponse struct {
	Field    string    `json:"field"`
	Query    string    `json:"query"`
	Results  []BookDTO `json:"results"`
	NotFound string    `json:"not_found,omitempty"`
}

type StatsDTO struct {
	TotalBooks     int    `json:"total_books"`
	BooksRead      int    `json:"books_read"`
	PercentageRead string `json:"percentage_read"`
}

// ============================
// Page DTO (HTML)
// ============================

type SearchView struct {
	Field    string
	Query    string
	Results  []BookDTO
	NotFound string
}

type LibraryPageData struct {
	Title        string
	Tab          string
	Form         CreateBookRequest
	FormError    string
	StoreError   string
	Books        []BookDTO
	EmptyMessage string
	Search       SearchView
	Stats        StatsDTO
	SearchFields []string
}
