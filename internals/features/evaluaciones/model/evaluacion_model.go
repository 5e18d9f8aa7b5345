// file: internals/features/evaluaciones/model/evaluacion_model.go
package model

import "time"

// EvaluacionModel representa la tabla evaluaciones.
// usuario_registro es constante: no existe directorio de usuarios en este
// backend, el valor 1 es el usuario "Sistema".
type EvaluacionModel struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDOficial       int64     `gorm:"column:id_oficial;not null" json:"id_oficial"`
	TipoEvaluacion  string    `gorm:"column:tipo_evaluacion;type:text;not null" json:"tipo_evaluacion"`
	FechaEvaluacion string    `gorm:"column:fecha_evaluacion;type:date;not null" json:"fecha_evaluacion"`
	Calificacion    *float64  `gorm:"column:calificacion" json:"calificacion"`
	Evaluador       string    `gorm:"column:evaluador;type:text;not null" json:"evaluador"`
	Observaciones   *string   `gorm:"column:observaciones;type:text" json:"observaciones"`
	FechaRegistro   time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
	UsuarioRegistro int       `gorm:"column:usuario_registro;not null" json:"usuario_registro"`
}

func (EvaluacionModel) TableName() string {
	return "evaluaciones"
}
