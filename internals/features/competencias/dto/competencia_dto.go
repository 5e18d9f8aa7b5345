// file: internals/features/competencias/dto/competencia_dto.go
package dto

import (
	"time"

	helper "sistema_policial_backend/internals/helpers"
)

/* =========================
   CREATE (MULTIPART)
   ========================= */
// El certificado PDF viaja como file part "archivo_pdf".
type CreateCompetenciaRequest struct {
	IDOficial        string `form:"id_oficial"`
	Fecha            string `form:"fecha_competencia"`
	Institucion      string `form:"institucion_competencia"`
	Resultado        string `form:"resultado_competencia"`
	Vigencia         string `form:"vigencia"`
	EnlaceConstancia string `form:"enlace_constancia"`
}

/* =========================
   LISTADO
   ========================= */

type CompetenciaRow struct {
	ID               int64      `gorm:"column:id"`
	IDOficial        *int64     `gorm:"column:id_oficial"`
	Fecha            *time.Time `gorm:"column:fecha"`
	Institucion      string     `gorm:"column:institucion"`
	Resultado        string     `gorm:"column:resultado"`
	Vigencia         string     `gorm:"column:vigencia"`
	EnlaceConstancia *string    `gorm:"column:enlace_constancia"`
	RutaArchivo      *string    `gorm:"column:ruta_archivo"`
	NombreOficial    *string    `gorm:"column:nombre_oficial"`
}

type CompetenciaResponse struct {
	ID               int64   `json:"id"`
	IDOficial        *int64  `json:"id_oficial"`
	Fecha            *string `json:"fecha"`
	Institucion      string  `json:"institucion"`
	Resultado        string  `json:"resultado"`
	Vigencia         string  `json:"vigencia"`
	EnlaceConstancia *string `json:"enlace_constancia"`
	RutaArchivo      *string `json:"ruta_archivo"`
	NombreOficial    *string `json:"nombre_oficial"`
}

func FromCompetenciaRow(r CompetenciaRow) CompetenciaResponse {
	return CompetenciaResponse{
		ID:               r.ID,
		IDOficial:        r.IDOficial,
		Fecha:            helper.FormatFecha(r.Fecha),
		Institucion:      r.Institucion,
		Resultado:        r.Resultado,
		Vigencia:         r.Vigencia,
		EnlaceConstancia: r.EnlaceConstancia,
		RutaArchivo:      r.RutaArchivo,
		NombreOficial:    r.NombreOficial,
	}
}
