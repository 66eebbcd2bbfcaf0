package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"booklibrary_backend/internals/features/library/books/dto"
	"booklibrary_backend/internals/features/library/books/service"
	"booklibrary_backend/internals/features/library/books/views"

	"github.com/gofiber/fiber/v2"
)

const (
	pageTitle = "Personal Books Library Manager"

	TabLibrary    = "library"
	TabSearch     = "search"
	TabStatistics = "statistics"
)

type BookPageController struct {
	svc *service.LibraryService
}

func NewBookPageController(svc *service.LibraryService) *BookPageController {
	return &BookPageController{svc: svc}
}

type pageQuery struct {
	tab   string
	field string
	query string
}

func pageQueryFrom(c *fiber.Ctx) pageQuery {
	q := pageQuery{
		tab:   strings.ToLower(c.Query("tab")),
		field: c.Query("field"),
		query: c.Query("q"),
	}
	switch q.tab {
	case TabLibrary, TabSearch, TabStatistics:
	default:
		if q.query != "" {
			q.tab = TabSearch
		} else {
			q.tab = TabLibrary
		}
	}
	return q
}

// =======================
// 📚 Full page (sidebar form + three views)
// =======================
func (ctrl *BookPageController) Index(c *fiber.Ctx) error {
	data := ctrl.buildPage(c.UserContext(), pageQueryFrom(c))
	status := fiber.StatusOK
	if data.StoreError != "" {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).Render(views.LibraryPage, data, views.Layout)
}

// =======================
// ➕ Add Book (form submit)
// =======================
func (ctrl *BookPageController) Create(c *fiber.Ctx) error {
	var form dto.CreateBookRequest
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}

	_, err := ctrl.svc.Add(c.UserContext(), form)
	if err == nil {
		return c.Redirect("/?tab="+TabLibrary, fiber.StatusSeeOther)
	}

	data := ctrl.buildPage(c.UserContext(), pageQuery{tab: TabLibrary})
	data.Form = form

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		data.FormError = service.RequiredFieldsMessage
		return c.Status(fiber.StatusUnprocessableEntity).Render(views.LibraryPage, data, views.Layout)
	}

	log.Printf("[ERROR] add book: %v", err)
	data.StoreError = "Could not save the book: " + err.Error()
	return c.Status(fiber.StatusInternalServerError).Render(views.LibraryPage, data, views.Layout)
}

// =======================
// 🗑️ Remove Book
// =======================
func (ctrl *BookPageController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	_, err := ctrl.svc.Remove(c.UserContext(), id)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrBookNotFound):
		log.Printf("[INFO] remove %q: already gone", id)
	default:
		log.Printf("[ERROR] remove book %q: %v", id, err)
		data := ctrl.buildPage(c.UserContext(), pageQuery{tab: TabLibrary})
		data.StoreError = "Could not remove the book: " + err.Error()
		return c.Status(fiber.StatusInternalServerError).Render(views.LibraryPage, data, views.Layout)
	}
	return c.Redirect("/?tab="+TabLibrary, fiber.StatusSeeOther)
}

// buildPage reloads the collection and recomputes every view.
func (ctrl *BookPageController) buildPage(ctx context.Context, q pageQuery) dto.LibraryPageData {
	field, err := service.ParseSearchField(q.field)
	if err != nil {
		field = service.SearchByTitle
	}

	data := dto.LibraryPageData{
		Title:        pageTitle,
		Tab:          q.tab,
		Books:        []dto.BookDTO{},
		EmptyMessage: service.EmptyLibraryMessage,
		Search:       dto.SearchView{Field: field.Label(), Query: q.query},
		Stats:        ToStatsDTO(service.ComputeStats(nil)),
		SearchFields: searchFieldLabels(),
	}

	lib, err := ctrl.svc.Load(ctx)
	if err != nil {
		log.Printf("[ERROR] load library: %v", err)
		data.StoreError = "Could not load your library: " + err.Error()
		return data
	}

	books := lib.Books()
	res := service.Search(books, field, q.query)
	data.Books = dto.ToBookDTOs(books)
	data.Search.Results = dto.ToBookDTOs(res.Books)
	data.Search.NotFound = res.NotFound
	data.Stats = ToStatsDTO(service.ComputeStats(books))
	return data
}

func searchFieldLabels() []string {
	out := make([]string, 0, len(service.SearchFields))
	for _, f := range service.SearchFields {
		out = append(out, f.Label())
	}
	return out
}

func ToStatsDTO(s service.Stats) dto.StatsDTO {
	return dto.StatsDTO{
		TotalBooks:     s.Total,
		BooksRead:      s.Read,
		PercentageRead: s.PercentageRead(),
	}
}
