package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bukuku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar ke app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
