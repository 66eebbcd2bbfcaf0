package routes

import (
	"time"

	"booklibrary_backend/internals/features/library/books/service"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, svc *service.LibraryService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		storeStatus := "OK"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		books := 0

		lib, err := svc.Load(c.UserContext())
		if err != nil {
			storeStatus = err.Error()
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		} else {
			books = lib.Len()
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"store":          svc.StoreName(),
			"store_status":   storeStatus,
			"books":          books,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
