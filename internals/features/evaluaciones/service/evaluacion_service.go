// file: internals/features/evaluaciones/service/evaluacion_service.go
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"sistema_policial_backend/internals/features/evaluaciones/dto"
	"sistema_policial_backend/internals/features/evaluaciones/model"
	helper "sistema_policial_backend/internals/helpers"
	"sistema_policial_backend/internals/helpers/errs"
)

// usuarioSistema es el usuario_registro constante de todas las altas.
const usuarioSistema = 1

type EvaluacionService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEvaluacionService(db *gorm.DB) *EvaluacionService {
	return &EvaluacionService{DB: db, validate: helper.NewValidator()}
}

func (s *EvaluacionService) Create(ctx context.Context, req *dto.CreateEvaluacionRequest) (int64, error) {
	ev, err := s.validateCreate(req)
	if err != nil {
		return 0, err
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return errs.Persistence("Error al guardar la evaluación", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	return ev.ID, nil
}

func (s *EvaluacionService) validateCreate(req *dto.CreateEvaluacionRequest) (*model.EvaluacionModel, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, errs.Persistence("Error al validar la solicitud", err)
		}
		var faltantes []string
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				faltantes = append(faltantes, fe.Field())
			}
		}
		return nil, errs.Validation("Faltan campos requeridos: "+strings.Join(faltantes, ", "), faltantes...)
	}

	idOficial, err := strconv.ParseInt(strings.TrimSpace(req.IDOficial), 10, 64)
	if err != nil {
		return nil, errs.Validation("El ID del oficial no es válido", "id_oficial")
	}

	fecha := strings.TrimSpace(req.FechaEvaluacion)
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, errs.Validation("Formato de fecha inválido")
	}

	ev := &model.EvaluacionModel{
		IDOficial:       idOficial,
		TipoEvaluacion:  strings.TrimSpace(req.TipoEvaluacion),
		FechaEvaluacion: fecha,
		Evaluador:       strings.TrimSpace(req.Evaluador),
		UsuarioRegistro: usuarioSistema,
	}

	// calificación opcional, [0,100] inclusive cuando viene
	if cal := strings.TrimSpace(req.Calificacion); cal != "" {
		v, err := strconv.ParseFloat(cal, 64)
		if err != nil || v < 0 || v > 100 {
			return nil, errs.Validation("La calificación debe ser un número entre 0 y 100")
		}
		ev.Calificacion = &v
	}
	if obs := strings.TrimSpace(req.Observaciones); obs != "" {
		ev.Observaciones = &obs
	}

	return ev, nil
}
