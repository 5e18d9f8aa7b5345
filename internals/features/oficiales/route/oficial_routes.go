// file: internals/features/oficiales/route/oficial_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/configs"
	"sistema_policial_backend/internals/features/oficiales/controller"
	"sistema_policial_backend/internals/features/oficiales/service"
	"sistema_policial_backend/internals/helpers/storage"
)

func OficialRoutes(api fiber.Router, db *gorm.DB, files *storage.LocalStorage, cfg configs.Config) {
	ctl := controller.NewOficialController(
		service.NewOficialService(db, files),
		!cfg.IsProduction(),
	)

	api.Post("/oficiales", ctl.Create)
	api.Get("/oficiales/buscar", ctl.Buscar)
	api.Get("/estadisticas", ctl.Estadisticas)
}
