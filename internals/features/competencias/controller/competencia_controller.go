// file: internals/features/competencias/controller/competencia_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/competencias/dto"
	"sistema_policial_backend/internals/features/competencias/service"
	helper "sistema_policial_backend/internals/helpers"
	"sistema_policial_backend/internals/helpers/errs"
)

type CompetenciaController struct {
	DB         *gorm.DB
	Service    *service.CompetenciaService
	ExposeDiag bool
}

func NewCompetenciaController(db *gorm.DB, svc *service.CompetenciaService, exposeDiag bool) *CompetenciaController {
	return &CompetenciaController{DB: db, Service: svc, ExposeDiag: exposeDiag}
}

// GET /api/competencias?id_oficial=
func (ctl *CompetenciaController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Table("competencias_basicas AS cb").
		Select("cb.*, o.nombre_completo AS nombre_oficial").
		Joins("LEFT JOIN oficiales o ON cb.id_oficial = o.id")

	if idOficial := strings.TrimSpace(c.Query("id_oficial")); idOficial != "" {
		q = q.Where("cb.id_oficial = ?", idOficial)
	}

	var rows []dto.CompetenciaRow
	if err := q.Order("cb.fecha DESC").Scan(&rows).Error; err != nil {
		return helper.JsonFault(c, errs.Persistence("Error al obtener las competencias básicas", err), ctl.ExposeDiag)
	}

	out := make([]dto.CompetenciaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromCompetenciaRow(r))
	}
	return helper.JsonData(c, out)
}

// POST /api/competencias
func (ctl *CompetenciaController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompetenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formulario no válido")
	}

	archivo, err := c.FormFile("archivo_pdf")
	if err != nil {
		archivo = nil
	}

	id, err := ctl.Service.Create(c.UserContext(), &req, archivo)
	if err != nil {
		log.Printf("Error al guardar la competencia básica: %v", err)
		return helper.JsonFault(c, err, ctl.ExposeDiag)
	}

	return helper.JsonCreated(c, "Competencia básica guardada exitosamente", fiber.Map{"id": id})
}
