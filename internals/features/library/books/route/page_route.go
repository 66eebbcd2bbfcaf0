package route

import (
	"booklibrary_backend/internals/features/library/books/controller"
	"booklibrary_backend/internals/features/library/books/service"

	"github.com/gofiber/fiber/v2"
)

// BookPageRoutes mounts the server-rendered UI.
func BookPageRoutes(app fiber.Router, svc *service.LibraryService) {
	pageCtrl := controller.NewBookPageController(svc)

	app.Get("/", pageCtrl.Index)                   // 📚 Library / Search / Statistics
	app.Post("/books", pageCtrl.Create)            // ➕ Add Book form
	app.Post("/books/:id/delete", pageCtrl.Delete) // 🗑️ Remove button
}
