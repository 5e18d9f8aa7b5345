// file: internals/features/competencias/route/competencia_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/configs"
	"sistema_policial_backend/internals/features/competencias/controller"
	"sistema_policial_backend/internals/features/competencias/service"
	"sistema_policial_backend/internals/helpers/storage"
)

func CompetenciaRoutes(api fiber.Router, db *gorm.DB, files *storage.LocalStorage, cfg configs.Config) {
	ctl := controller.NewCompetenciaController(
		db,
		service.NewCompetenciaService(db, files),
		!cfg.IsProduction(),
	)

	api.Get("/competencias", ctl.List)
	api.Post("/competencias", ctl.Create)
}
