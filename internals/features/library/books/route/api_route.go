package route

import (
	"booklibrary_backend/internals/features/library/books/controller"
	"booklibrary_backend/internals/features/library/books/service"

	"github.com/gofiber/fiber/v2"
)

func BookAPIRoutes(api fiber.Router, svc *service.LibraryService) {
	bookCtrl := controller.NewBookAPIController(svc)

	books := api.Group("/books")
	books.Get("/", bookCtrl.GetBooks)                       // 📄 List
	books.Post("/", bookCtrl.CreateBook)                    // ➕ Add
	books.Get("/search", bookCtrl.SearchBooks)              // 🔍 Search by title/author
	books.Get("/stats", bookCtrl.GetStats)                  // 📊 Statistics
	books.Post("/remove-matching", bookCtrl.DeleteMatching) // 🗑️ Remove all identical
	books.Delete("/:id", bookCtrl.DeleteBook)               // 🗑️ Remove one
}
