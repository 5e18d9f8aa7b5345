// file: internals/features/formacion/controller/formacion_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/formacion/dto"
	"sistema_policial_backend/internals/features/formacion/model"
	helper "sistema_policial_backend/internals/helpers"
	"sistema_policial_backend/internals/helpers/errs"
)

type FormacionController struct {
	DB         *gorm.DB
	ExposeDiag bool
}

func NewFormacionController(db *gorm.DB, exposeDiag bool) *FormacionController {
	return &FormacionController{DB: db, ExposeDiag: exposeDiag}
}

// GET /api/formacion?id_oficial=
// LEFT JOIN con oficiales (ficha sin oficial sigue saliendo), más reciente primero.
func (ctl *FormacionController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.FormacionModel{}).
		Select("formacion.*, o.nombre_completo AS nombre_oficial").
		Joins("LEFT JOIN oficiales o ON formacion.id_oficial = o.id")

	if idOficial := strings.TrimSpace(c.Query("id_oficial")); idOficial != "" {
		q = q.Where("formacion.id_oficial = ?", idOficial)
	}

	var rows []dto.FormacionRow
	if err := q.Order("formacion.fecha_curso DESC").Scan(&rows).Error; err != nil {
		return helper.JsonFault(c, errs.Persistence("Error al obtener la formación", err), ctl.ExposeDiag)
	}

	out := make([]dto.FormacionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromFormacionRow(r))
	}
	return helper.JsonData(c, out)
}
