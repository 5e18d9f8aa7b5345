// file: internals/features/formacion/route/formacion_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/configs"
	"sistema_policial_backend/internals/features/formacion/controller"
)

func FormacionRoutes(api fiber.Router, db *gorm.DB, cfg configs.Config) {
	ctl := controller.NewFormacionController(db, !cfg.IsProduction())

	api.Get("/formacion", ctl.List)
}
