// file: internals/features/evaluaciones/route/evaluacion_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/configs"
	"sistema_policial_backend/internals/features/evaluaciones/controller"
	"sistema_policial_backend/internals/features/evaluaciones/service"
)

func EvaluacionRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config) {
	ctl := controller.NewEvaluacionController(
		db,
		service.NewEvaluacionService(db),
		!cfg.IsProduction(),
	)

	api.Get("/evaluaciones", ctl.List)
	api.Post("/evaluaciones", ctl.Create)
}
