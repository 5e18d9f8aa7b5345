// file: internals/features/evaluaciones/controller/evaluacion_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/evaluaciones/dto"
	"sistema_policial_backend/internals/features/evaluaciones/service"
	helper "sistema_policial_backend/internals/helpers"
	"sistema_policial_backend/internals/helpers/errs"
)

type EvaluacionController struct {
	DB         *gorm.DB
	Service    *service.EvaluacionService
	ExposeDiag bool
}

func NewEvaluacionController(db *gorm.DB, svc *service.EvaluacionService, exposeDiag bool) *EvaluacionController {
	return &EvaluacionController{DB: db, Service: svc, ExposeDiag: exposeDiag}
}

// GET /api/evaluaciones
// INNER JOIN con oficiales: una evaluación con referencia colgante queda
// fuera del listado (a diferencia del LEFT JOIN de formación/competencias).
func (ctl *EvaluacionController) List(c *fiber.Ctx) error {
	var rows []dto.EvaluacionRow
	err := ctl.DB.WithContext(c.UserContext()).
		Table("evaluaciones AS e").
		Select("e.*, o.nombre_completo AS nombre_oficial").
		Joins("JOIN oficiales o ON e.id_oficial = o.id").
		Order("e.fecha_evaluacion DESC, e.fecha_registro DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonFault(c, errs.Persistence("Error al obtener las evaluaciones", err), ctl.ExposeDiag)
	}

	out := make([]dto.EvaluacionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromEvaluacionRow(r))
	}
	return helper.JsonData(c, out)
}

// POST /api/evaluaciones
func (ctl *EvaluacionController) Create(c *fiber.Ctx) error {
	var req dto.CreateEvaluacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formulario no válido")
	}

	id, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		log.Printf("Error al guardar la evaluación: %v", err)
		return helper.JsonFault(c, err, ctl.ExposeDiag)
	}

	return helper.JsonCreated(c, "Evaluación guardada correctamente", fiber.Map{"data": fiber.Map{"id": id}})
}
