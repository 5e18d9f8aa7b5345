// file: internals/features/evaluaciones/dto/evaluacion_dto.go
package dto

import (
	"time"

	helper "sistema_policial_backend/internals/helpers"
)

/* =========================
   CREATE
   ========================= */

type CreateEvaluacionRequest struct {
	IDOficial       string `form:"id_oficial" json:"id_oficial" validate:"required"`
	TipoEvaluacion  string `form:"tipo_evaluacion" json:"tipo_evaluacion" validate:"required"`
	FechaEvaluacion string `form:"fecha_evaluacion" json:"fecha_evaluacion" validate:"required"`
	Evaluador       string `form:"evaluador" json:"evaluador" validate:"required"`
	Calificacion    string `form:"calificacion" json:"calificacion"`
	Observaciones   string `form:"observaciones" json:"observaciones"`
}

/* =========================
   LISTADO
   ========================= */

type EvaluacionRow struct {
	ID              int64      `gorm:"column:id"`
	IDOficial       int64      `gorm:"column:id_oficial"`
	TipoEvaluacion  string     `gorm:"column:tipo_evaluacion"`
	FechaEvaluacion *time.Time `gorm:"column:fecha_evaluacion"`
	Calificacion    *float64   `gorm:"column:calificacion"`
	Evaluador       string     `gorm:"column:evaluador"`
	Observaciones   *string    `gorm:"column:observaciones"`
	FechaRegistro   *time.Time `gorm:"column:fecha_registro"`
	UsuarioRegistro int        `gorm:"column:usuario_registro"`
	NombreOficial   string     `gorm:"column:nombre_oficial"`
}

type EvaluacionResponse struct {
	ID              int64    `json:"id"`
	IDOficial       int64    `json:"id_oficial"`
	TipoEvaluacion  string   `json:"tipo_evaluacion"`
	FechaEvaluacion *string  `json:"fecha_evaluacion"`
	Calificacion    *float64 `json:"calificacion"`
	Evaluador       string   `json:"evaluador"`
	Observaciones   *string  `json:"observaciones"`
	FechaRegistro   *string  `json:"fecha_registro"`
	UsuarioRegistro int      `json:"usuario_registro"`
	NombreOficial   string   `json:"nombre_oficial"`
	NombreUsuario   string   `json:"nombre_usuario"` // constante: no hay directorio de usuarios
}

func FromEvaluacionRow(r EvaluacionRow) EvaluacionResponse {
	return EvaluacionResponse{
		ID:              r.ID,
		IDOficial:       r.IDOficial,
		TipoEvaluacion:  r.TipoEvaluacion,
		FechaEvaluacion: helper.FormatFecha(r.FechaEvaluacion),
		Calificacion:    r.Calificacion,
		Evaluador:       r.Evaluador,
		Observaciones:   r.Observaciones,
		FechaRegistro:   helper.FormatTimestamp(r.FechaRegistro),
		UsuarioRegistro: r.UsuarioRegistro,
		NombreOficial:   r.NombreOficial,
		NombreUsuario:   "Sistema",
	}
}
