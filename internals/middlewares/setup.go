package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sistema_policial_backend/internals/middlewares/logger"
)

// SetupMiddlewares cuelga la pila base: recuperación de panics,
// CORS, rate limit global y log de requests.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
