// file: internals/features/oficiales/controller/oficial_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"sistema_policial_backend/internals/features/oficiales/dto"
	"sistema_policial_backend/internals/features/oficiales/service"
	helper "sistema_policial_backend/internals/helpers"
)

type OficialController struct {
	Service    *service.OficialService
	ExposeDiag bool // detalles de diagnóstico del store, solo fuera de producción
}

func NewOficialController(svc *service.OficialService, exposeDiag bool) *OficialController {
	return &OficialController{Service: svc, ExposeDiag: exposeDiag}
}

// POST /api/oficiales
func (ctl *OficialController) Create(c *fiber.Ctx) error {
	var req dto.CreateOficialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formulario no válido")
	}

	// adjunto opcional
	pdf, err := c.FormFile("pdfFile")
	if err != nil {
		pdf = nil
	}

	id, err := ctl.Service.Create(c.UserContext(), &req, pdf)
	if err != nil {
		log.Printf("Error al guardar el oficial: %v", err)
		return helper.JsonFault(c, err, ctl.ExposeDiag)
	}

	log.Printf("Oficial guardado con ID: %d", id)
	return helper.JsonCreated(c, "Oficial guardado exitosamente", fiber.Map{"id": id})
}

// GET /api/oficiales/buscar?termino=
func (ctl *OficialController) Buscar(c *fiber.Ctx) error {
	rows, err := ctl.Service.Buscar(c.UserContext(), c.Query("termino"))
	if err != nil {
		return helper.JsonFault(c, err, ctl.ExposeDiag)
	}
	return helper.JsonData(c, rows)
}

// GET /api/estadisticas
func (ctl *OficialController) Estadisticas(c *fiber.Ctx) error {
	stats, err := ctl.Service.Estadisticas(c.UserContext())
	if err != nil {
		return helper.JsonFault(c, err, ctl.ExposeDiag)
	}
	return helper.JsonData(c, stats)
}
