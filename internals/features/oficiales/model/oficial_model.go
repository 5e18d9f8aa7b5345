// file: internals/features/oficiales/model/oficial_model.go
package model

// OficialModel representa la tabla oficiales.
// La terna (curp, cuip, cup) debe ser globalmente única; el chequeo se hace
// dentro de la transacción de alta, con la restricción de BD como respaldo.
type OficialModel struct {
	ID                 int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NombreCompleto     string  `gorm:"column:nombre_completo;type:text;not null" json:"nombre_completo"`
	CURP               string  `gorm:"column:curp;type:varchar(18);not null;uniqueIndex" json:"curp"`
	CUIP               string  `gorm:"column:cuip;type:text;not null;uniqueIndex" json:"cuip"`
	CUP                string  `gorm:"column:cup;type:text;not null;uniqueIndex" json:"cup"`
	Edad               int     `gorm:"column:edad;not null" json:"edad"`
	Sexo               string  `gorm:"column:sexo;type:text;not null" json:"sexo"`
	EstadoCivil        string  `gorm:"column:estado_civil;type:text;not null" json:"estado_civil"`
	AreaAdscripcion    string  `gorm:"column:area_adscripcion;type:text;not null" json:"area_adscripcion"`
	Grado              string  `gorm:"column:grado;type:text;not null" json:"grado"`
	CargoActual        string  `gorm:"column:cargo_actual;type:text;not null" json:"cargo_actual"`
	FechaIngreso       string  `gorm:"column:fecha_ingreso;type:date;not null" json:"fecha_ingreso"`
	Escolaridad        string  `gorm:"column:escolaridad;type:text;not null" json:"escolaridad"`
	TelefonoContacto   string  `gorm:"column:telefono_contacto;type:text;not null" json:"telefono_contacto"`
	TelefonoEmergencia string  `gorm:"column:telefono_emergencia;type:text;not null" json:"telefono_emergencia"`
	Funcion            string  `gorm:"column:funcion;type:text;not null" json:"funcion"`
	RutaPDF            *string `gorm:"column:ruta_pdf;type:text" json:"ruta_pdf"`
	Activo             bool    `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (OficialModel) TableName() string {
	return "oficiales"
}
