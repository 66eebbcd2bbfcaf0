// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	bookRoute "booklibrary_backend/internals/features/library/books/route"
	"booklibrary_backend/internals/features/library/books/service"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, svc *service.LibraryService) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, svc)

	// ===================== UI =====================
	log.Println("[INFO] Mounting Library page routes...")
	bookRoute.BookPageRoutes(app, svc)

	// ===================== JSON API =====================
	log.Println("[INFO] Mounting Library API routes...")
	api := app.Group("/api")
	bookRoute.BookAPIRoutes(api, svc)
}
