// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/databases"
	helper "sistema_policial_backend/internals/helpers"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := databases.Ping(db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})

	// Sonda de conectividad con el store
	app.Get("/api/test", func(c *fiber.Ctx) error {
		var probe []map[string]interface{}
		if err := db.WithContext(c.UserContext()).Raw("SELECT 1 AS test").Scan(&probe).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al conectar con la base de datos")
		}
		return helper.JsonOK(c, "Conexión exitosa a la base de datos", probe)
	})
}
