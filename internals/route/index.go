// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/configs"
	competenciaRoute "sistema_policial_backend/internals/features/competencias/route"
	evaluacionRoute "sistema_policial_backend/internals/features/evaluaciones/route"
	formacionRoute "sistema_policial_backend/internals/features/formacion/route"
	oficialRoute "sistema_policial_backend/internals/features/oficiales/route"
	"sistema_policial_backend/internals/helpers/storage"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, files *storage.LocalStorage, cfg configs.Config) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Registrando rutas de oficiales...")
	oficialRoute.OficialRoutes(api, db, files, cfg)

	log.Println("[INFO] Registrando rutas de formación...")
	formacionRoute.FormacionRoutes(api, db, cfg)

	log.Println("[INFO] Registrando rutas de competencias básicas...")
	competenciaRoute.CompetenciaRoutes(api, db, files, cfg)

	log.Println("[INFO] Registrando rutas de evaluaciones...")
	evaluacionRoute.EvaluacionRoutes(api, db, cfg)

	// Adjuntos subidos, servidos por su basename definitivo
	app.Static("/uploads", files.Dir)

	// Shell de la SPA: estáticos + fallback a index.html
	app.Static("/", "./public")
	app.Get("*", func(c *fiber.Ctx) error {
		if err := c.SendFile("./public/index.html"); err != nil {
			log.Printf("Error al enviar index.html: %v", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Error al cargar la aplicación")
		}
		return nil
	})
}
