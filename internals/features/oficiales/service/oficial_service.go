// file: internals/features/oficiales/service/oficial_service.go
package service

import (
	"context"
	"errors"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/oficiales/dto"
	"sistema_policial_backend/internals/features/oficiales/model"
	helper "sistema_policial_backend/internals/helpers"
	"sistema_policial_backend/internals/helpers/errs"
	"sistema_policial_backend/internals/helpers/storage"
)

var fechaIngresoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// OficialService implementa el protocolo de alta de oficiales:
// validación, chequeo de duplicados, inserción y colocación del adjunto
// como una sola unidad de trabajo.
type OficialService struct {
	DB       *gorm.DB
	Files    *storage.LocalStorage
	validate *validator.Validate
}

func NewOficialService(db *gorm.DB, files *storage.LocalStorage) *OficialService {
	return &OficialService{
		DB:       db,
		Files:    files,
		validate: helper.NewValidator(),
	}
}

/* =========================
   CREATE
   ========================= */

func (s *OficialService) Create(ctx context.Context, req *dto.CreateOficialRequest, pdf *multipart.FileHeader) (int64, error) {
	req.Normalize()
	if err := s.validateCreate(req); err != nil {
		return 0, err
	}

	// El adjunto se recibe primero en tmp/; cualquier salida con error
	// posterior lo descarta para no dejar huérfanos.
	var temp *storage.TempFile
	if pdf != nil {
		t, err := s.Files.AcceptTemp(pdf)
		if err != nil {
			return 0, errs.Persistence("No se pudo recibir el archivo adjunto", err)
		}
		temp = t
	}
	defer temp.Discard()

	var id int64
	promoted := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Duplicados: OR lógico sobre los tres códigos, no clave compuesta.
		var n int64
		if err := tx.Model(&model.OficialModel{}).
			Where("curp = ? OR cuip = ? OR cup = ?", req.CURP, req.CUIP, req.CUP).
			Count(&n).Error; err != nil {
			return errs.Persistence("Error al guardar el oficial", err)
		}
		if n > 0 {
			return errs.Conflict("Ya existe un oficial con el mismo CURP, CUIP o CUP")
		}

		of := req.ToModel()
		if temp != nil {
			name := temp.Name
			of.RutaPDF = &name
		}
		if err := tx.Create(&of).Error; err != nil {
			if errs.IsUniqueViolation(err) {
				return errs.Conflict("Ya existe un oficial con el mismo CURP, CUIP o CUP")
			}
			return errs.Persistence("Error al guardar el oficial", err)
		}
		id = of.ID

		// El adjunto se promueve ANTES del COMMIT: si la colocación falla la
		// fila se revierte, nunca queda una fila apuntando a un archivo que
		// no llegó a existir.
		if temp != nil {
			if err := temp.Promote(); err != nil {
				return errs.Persistence("No se pudo guardar el archivo adjunto", err)
			}
			promoted = true
		}
		return nil
	})
	if err != nil {
		if promoted {
			// el COMMIT falló después de promover: retirar el archivo
			_ = s.Files.Remove(temp.Name)
		}
		return 0, err
	}

	return id, nil
}

func (s *OficialService) validateCreate(req *dto.CreateOficialRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errs.Persistence("Error al validar la solicitud", err)
		}

		// Presencia primero: se reporta la lista completa de faltantes.
		var faltantes []string
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				faltantes = append(faltantes, fe.Field())
			}
		}
		if len(faltantes) > 0 {
			return errs.Validation("Faltan campos requeridos: "+strings.Join(faltantes, ", "), faltantes...)
		}

		for _, fe := range verrs {
			if fe.Field() == "curp" && fe.Tag() == "len" {
				return errs.Validation("La CURP debe tener 18 caracteres")
			}
		}
		return errs.Validation("Datos del oficial no válidos")
	}

	edad, err := strconv.Atoi(req.Edad)
	if err != nil || edad < 18 || edad > 100 {
		return errs.Validation("La edad debe ser un número entre 18 y 100")
	}

	if !fechaIngresoRe.MatchString(req.FechaIngreso) {
		return errs.Validation("El formato de fecha debe ser YYYY-MM-DD")
	}

	return nil
}

/* =========================
   BÚSQUEDA
   ========================= */

func (s *OficialService) Buscar(ctx context.Context, termino string) ([]dto.OficialBusquedaRow, error) {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return nil, errs.Validation("Término de búsqueda requerido")
	}

	patron := "%" + strings.ToLower(termino) + "%"
	rows := make([]dto.OficialBusquedaRow, 0, 50)
	err := s.DB.WithContext(ctx).
		Model(&model.OficialModel{}).
		Select("id, nombre_completo, curp, cuip, cup, grado, cargo_actual").
		Where(`LOWER(nombre_completo) LIKE ?
			OR LOWER(curp) LIKE ?
			OR LOWER(cuip) LIKE ?
			OR LOWER(cup) LIKE ?
			OR LOWER(cargo_actual) LIKE ?`,
			patron, patron, patron, patron, patron).
		Order("nombre_completo").
		Limit(50).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Persistence("Error al buscar oficiales", err)
	}
	return rows, nil
}

/* =========================
   ESTADÍSTICAS
   ========================= */

// Estadisticas obtiene la partición activos/inactivos en una sola sentencia
// de agregación: ambos conteos salen del mismo snapshot sin importar el nivel
// de aislamiento, aun con altas concurrentes.
func (s *OficialService) Estadisticas(ctx context.Context) (dto.Estadisticas, error) {
	var out dto.Estadisticas
	err := s.DB.WithContext(ctx).
		Model(&model.OficialModel{}).
		Select("COUNT(*) FILTER (WHERE activo) AS activos, COUNT(*) FILTER (WHERE NOT activo) AS inactivos").
		Scan(&out).Error
	if err != nil {
		return dto.Estadisticas{}, errs.Persistence("Error al obtener estadísticas de oficiales", err)
	}

	out.Total = out.Activos + out.Inactivos
	return out, nil
}
