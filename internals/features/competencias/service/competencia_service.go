// file: internals/features/competencias/service/competencia_service.go
package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/competencias/dto"
	"sistema_policial_backend/internals/features/competencias/model"
	oficialModel "sistema_policial_backend/internals/features/oficiales/model"
	"sistema_policial_backend/internals/helpers/errs"
	"sistema_policial_backend/internals/helpers/storage"
)

type CompetenciaService struct {
	DB    *gorm.DB
	Files *storage.LocalStorage
}

func NewCompetenciaService(db *gorm.DB, files *storage.LocalStorage) *CompetenciaService {
	return &CompetenciaService{DB: db, Files: files}
}

// Create da de alta una competencia básica. La existencia del oficial se
// verifica dentro de la misma transacción que la inserción.
func (s *CompetenciaService) Create(ctx context.Context, req *dto.CreateCompetenciaRequest, archivo *multipart.FileHeader) (int64, error) {
	// Validación previa a cualquier acceso al store.
	if strings.TrimSpace(req.IDOficial) == "" {
		return 0, errs.Validation("El ID del oficial es requerido", "id_oficial")
	}
	idOficial, err := strconv.ParseInt(strings.TrimSpace(req.IDOficial), 10, 64)
	if err != nil {
		return 0, errs.Validation("El ID del oficial no es válido", "id_oficial")
	}

	var temp *storage.TempFile
	if archivo != nil {
		t, err := s.Files.AcceptTemp(archivo)
		if err != nil {
			return 0, errs.Persistence("No se pudo recibir el archivo adjunto", err)
		}
		temp = t
	}
	defer temp.Discard()

	var id int64
	promoted := false
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var oficial oficialModel.OficialModel
		if err := tx.Select("id").First(&oficial, "id = ?", idOficial).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("El oficial especificado no existe")
			}
			return errs.Persistence("Error al guardar la competencia básica", err)
		}

		comp := model.CompetenciaModel{
			IDOficial:   idOficial,
			Fecha:       strings.TrimSpace(req.Fecha),
			Institucion: strings.TrimSpace(req.Institucion),
			Resultado:   strings.TrimSpace(req.Resultado),
			Vigencia:    strings.TrimSpace(req.Vigencia),
		}
		if enlace := strings.TrimSpace(req.EnlaceConstancia); enlace != "" {
			comp.EnlaceConstancia = &enlace
		}
		if temp != nil {
			ruta := "/uploads/" + temp.Name
			comp.RutaArchivo = &ruta
		}

		if err := tx.Create(&comp).Error; err != nil {
			return errs.Persistence("Error al guardar la competencia básica", err)
		}
		id = comp.ID

		// Colocación del adjunto dentro de la unidad de trabajo (ver oficiales).
		if temp != nil {
			if err := temp.Promote(); err != nil {
				return errs.Persistence("No se pudo guardar el archivo adjunto", err)
			}
			promoted = true
		}
		return nil
	})
	if txErr != nil {
		if promoted {
			_ = s.Files.Remove(temp.Name)
		}
		return 0, txErr
	}

	return id, nil
}
