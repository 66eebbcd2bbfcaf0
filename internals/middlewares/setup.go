package middlewares

import (
	"time"

	"booklibrary_backend/internals/configs"
	"booklibrary_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

const requestTimeout = 5 * time.Second

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(RequestIDMiddleware(requestTimeout))
	app.Use(GlobalRateLimiter(configs.RateLimitMax))
	app.Use("/api", CorsMiddleware(configs.CorsAllowOrigins))
}
