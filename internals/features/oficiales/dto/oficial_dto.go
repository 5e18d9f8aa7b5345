// file: internals/features/oficiales/dto/oficial_dto.go
package dto

import (
	"strconv"
	"strings"

	"sistema_policial_backend/internals/features/oficiales/model"
)

/* =========================
   CREATE (MULTIPART)
   ========================= */
// Los nombres de campo son los que envía el formulario del frontend.
// El PDF viaja aparte como file part "pdfFile" (c.FormFile).
type CreateOficialRequest struct {
	NombreCompleto     string `form:"nombreCompleto" validate:"required"`
	CURP               string `form:"curp" validate:"required,len=18"`
	CUIP               string `form:"cuip" validate:"required"`
	CUP                string `form:"cup" validate:"required"`
	Edad               string `form:"edad" validate:"required"`
	Sexo               string `form:"sexo" validate:"required"`
	EstadoCivil        string `form:"estadoCivil" validate:"required"`
	AreaAdscripcion    string `form:"areaAdscripcion" validate:"required"`
	Grado              string `form:"grado" validate:"required"`
	CargoActual        string `form:"cargoActual" validate:"required"`
	FechaIngreso       string `form:"fechaIngreso" validate:"required"`
	Escolaridad        string `form:"escolaridad" validate:"required"`
	TelefonoContacto   string `form:"telefonoContacto" validate:"required"`
	TelefonoEmergencia string `form:"telefonoEmergencia" validate:"required"`
	Funcion            string `form:"funcion" validate:"required"`
}

// Normalize recorta espacios y lleva los códigos únicos a mayúsculas,
// para que la unicidad sea insensible a casing.
func (r *CreateOficialRequest) Normalize() {
	r.NombreCompleto = strings.TrimSpace(r.NombreCompleto)
	r.CURP = strings.ToUpper(strings.TrimSpace(r.CURP))
	r.CUIP = strings.ToUpper(strings.TrimSpace(r.CUIP))
	r.CUP = strings.ToUpper(strings.TrimSpace(r.CUP))
	r.Edad = strings.TrimSpace(r.Edad)
	r.FechaIngreso = strings.TrimSpace(r.FechaIngreso)
}

func (r CreateOficialRequest) ToModel() model.OficialModel {
	edad, _ := strconv.Atoi(r.Edad) // ya validado por el servicio
	return model.OficialModel{
		NombreCompleto:     r.NombreCompleto,
		CURP:               r.CURP,
		CUIP:               r.CUIP,
		CUP:                r.CUP,
		Edad:               edad,
		Sexo:               r.Sexo,
		EstadoCivil:        r.EstadoCivil,
		AreaAdscripcion:    r.AreaAdscripcion,
		Grado:              r.Grado,
		CargoActual:        r.CargoActual,
		FechaIngreso:       r.FechaIngreso,
		Escolaridad:        r.Escolaridad,
		TelefonoContacto:   r.TelefonoContacto,
		TelefonoEmergencia: r.TelefonoEmergencia,
		Funcion:            r.Funcion,
	}
}

/* =========================
   BÚSQUEDA
   ========================= */

type OficialBusquedaRow struct {
	ID             int64  `gorm:"column:id" json:"id"`
	NombreCompleto string `gorm:"column:nombre_completo" json:"nombre_completo"`
	CURP           string `gorm:"column:curp" json:"curp"`
	CUIP           string `gorm:"column:cuip" json:"cuip"`
	CUP            string `gorm:"column:cup" json:"cup"`
	Grado          string `gorm:"column:grado" json:"grado"`
	CargoActual    string `gorm:"column:cargo_actual" json:"cargo_actual"`
}

/* =========================
   ESTADÍSTICAS
   ========================= */

type Estadisticas struct {
	Activos   int64 `json:"activos"`
	Inactivos int64 `json:"inactivos"`
	Total     int64 `json:"total"`
}
