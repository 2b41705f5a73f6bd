package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain. Order matters:
// recovery first so everything downstream is covered.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
