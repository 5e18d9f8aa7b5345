// file: internals/features/formacion/dto/formacion_dto.go
package dto

import (
	"time"

	helper "sistema_policial_backend/internals/helpers"
)

// FormacionRow es la fila del listado: formacion + nombre del oficial
// (LEFT JOIN: se tolera la referencia nula).
type FormacionRow struct {
	ID            int64      `gorm:"column:id"`
	IDOficial     *int64     `gorm:"column:id_oficial"`
	NombreCurso   string     `gorm:"column:nombre_curso"`
	Institucion   string     `gorm:"column:institucion"`
	FechaCurso    *time.Time `gorm:"column:fecha_curso"`
	FechaInicio   *time.Time `gorm:"column:fecha_inicio"`
	FechaFin      *time.Time `gorm:"column:fecha_fin"`
	FechaRegistro *time.Time `gorm:"column:fecha_registro"`
	NombreOficial *string    `gorm:"column:nombre_oficial"`
}

// FormacionResponse normaliza las fechas a texto antes de salir.
type FormacionResponse struct {
	ID            int64   `json:"id"`
	IDOficial     *int64  `json:"id_oficial"`
	NombreCurso   string  `json:"nombre_curso"`
	Institucion   string  `json:"institucion"`
	FechaCurso    *string `json:"fecha_curso"`
	FechaInicio   *string `json:"fecha_inicio"`
	FechaFin      *string `json:"fecha_fin"`
	FechaRegistro *string `json:"fecha_registro"`
	NombreOficial *string `json:"nombre_oficial"`
}

func FromFormacionRow(r FormacionRow) FormacionResponse {
	return FormacionResponse{
		ID:            r.ID,
		IDOficial:     r.IDOficial,
		NombreCurso:   r.NombreCurso,
		Institucion:   r.Institucion,
		FechaCurso:    helper.FormatFecha(r.FechaCurso),
		FechaInicio:   helper.FormatFecha(r.FechaInicio),
		FechaFin:      helper.FormatFecha(r.FechaFin),
		FechaRegistro: helper.FormatTimestamp(r.FechaRegistro),
		NombreOficial: r.NombreOficial,
	}
}
