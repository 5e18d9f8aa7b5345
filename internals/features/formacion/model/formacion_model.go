// file: internals/features/formacion/model/formacion_model.go
package model

import "time"

// FormacionModel representa la tabla formacion (cursos de formación).
// En este backend la tabla es de solo lectura: las altas llegan por carga
// directa, aquí únicamente se listan.
type FormacionModel struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDOficial     *int64     `gorm:"column:id_oficial" json:"id_oficial"`
	NombreCurso   string     `gorm:"column:nombre_curso;type:text;not null" json:"nombre_curso"`
	Institucion   string     `gorm:"column:institucion;type:text" json:"institucion"`
	FechaCurso    *time.Time `gorm:"column:fecha_curso;type:date" json:"fecha_curso"`
	FechaInicio   *time.Time `gorm:"column:fecha_inicio;type:date" json:"fecha_inicio"`
	FechaFin      *time.Time `gorm:"column:fecha_fin;type:date" json:"fecha_fin"`
	FechaRegistro time.Time  `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
}

func (FormacionModel) TableName() string {
	return "formacion"
}
