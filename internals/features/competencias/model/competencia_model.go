// file: internals/features/competencias/model/competencia_model.go
package model

// CompetenciaModel representa la tabla competencias_basicas.
// id_oficial debe referir a un oficial existente; el chequeo se hace
// explícitamente dentro de la transacción de alta, no se delega al FK,
// para que verificación e inserción sean una sola unidad de trabajo.
type CompetenciaModel struct {
	ID               int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDOficial        int64   `gorm:"column:id_oficial;not null" json:"id_oficial"`
	Fecha            string  `gorm:"column:fecha;type:date" json:"fecha"`
	Institucion      string  `gorm:"column:institucion;type:text" json:"institucion"`
	Resultado        string  `gorm:"column:resultado;type:text" json:"resultado"`
	Vigencia         string  `gorm:"column:vigencia;type:text" json:"vigencia"`
	EnlaceConstancia *string `gorm:"column:enlace_constancia;type:text" json:"enlace_constancia"`
	RutaArchivo      *string `gorm:"column:ruta_archivo;type:text" json:"ruta_archivo"`
}

func (CompetenciaModel) TableName() string {
	return "competencias_basicas"
}
