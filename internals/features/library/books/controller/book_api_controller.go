package controller

import (
	"errors"
	"log"

	"booklibrary_backend/internals/features/library/books/dto"
	"booklibrary_backend/internals/features/library/books/service"
	helper "booklibrary_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type BookAPIController struct {
	svc *service.LibraryService
}

func NewBookAPIController(svc *service.LibraryService) *BookAPIController {
	return &BookAPIController{svc: svc}
}

// =======================
// 📄 List Books
// =======================
func (ctrl *BookAPIController) GetBooks(c *fiber.Ctx) error {
	lib, err := ctrl.svc.Load(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return helper.JsonList(c, "Books retrieved", dto.ToBookDTOs(lib.Books()), lib.Len())
}

// =======================
// ➕ Create Book
// =======================
func (ctrl *BookAPIController) CreateBook(c *fiber.Ctx) error {
	var body dto.CreateBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	book, err := ctrl.svc.Add(c.UserContext(), body)
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		fields := make(map[string][]string, len(ve.Fields))
		for _, f := range ve.Fields {
			fields[f] = []string{"required"}
		}
		return helper.JsonValidationError(c, service.RequiredFieldsMessage, fields)
	case err != nil:
		return storeError(c, err)
	}
	return helper.JsonCreated(c, "Book added", dto.ToBookDTO(book))
}

// =======================
// 🗑️ Delete Book by ID
// =======================
func (ctrl *BookAPIController) DeleteBook(c *fiber.Ctx) error {
	book, err := ctrl.svc.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return helper.JsonDeleted(c, "Book removed", dto.ToBookDTO(book))
}

// =============================
// 🗑️ Delete every structurally identical Book
// =============================
func (ctrl *BookAPIController) DeleteMatching(c *fiber.Ctx) error {
	var body dto.RemoveMatchingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	removed, err := ctrl.svc.RemoveMatching(c.UserContext(), body.ToModel())
	if err != nil {
		return storeError(c, err)
	}
	return helper.JsonDeleted(c, "Books removed", fiber.Map{
		"removed": len(removed),
		"books":   dto.ToBookDTOs(removed),
	})
}

// =============================
// 🔍 Search Books
// Query: ?field=title|author&q=...
// =============================
func (ctrl *BookAPIController) SearchBooks(c *fiber.Ctx) error {
	field, err := service.ParseSearchField(c.Query("field"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lib, err := ctrl.svc.Load(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}

	res := service.Search(lib.Books(), field, c.Query("q"))
	return helper.JsonOK(c, "ok", dto.SearchResponse{
		Field:    string(res.Field),
		Query:    res.Query,
		Results:  dto.ToBookDTOs(res.Books),
		NotFound: res.NotFound,
	})
}

// =============================
// 📊 Statistics
// =============================
func (ctrl *BookAPIController) GetStats(c *fiber.Ctx) error {
	lib, err := ctrl.svc.Load(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return helper.JsonOK(c, "ok", ToStatsDTO(service.ComputeStats(lib.Books())))
}

func storeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrBookNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
