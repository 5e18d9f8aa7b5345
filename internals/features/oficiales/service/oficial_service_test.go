package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sistema_policial_backend/internals/features/oficiales/dto"
	"sistema_policial_backend/internals/features/oficiales/model"
	"sistema_policial_backend/internals/helpers/errs"
	"sistema_policial_backend/internals/helpers/storage"
)

func newTestService(t *testing.T) (*OficialService, *gorm.DB, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.OficialModel{}))

	uploadDir := t.TempDir()
	files, err := storage.NewLocalStorage(uploadDir)
	require.NoError(t, err)

	return NewOficialService(db, files), db, uploadDir
}

// validRequest arma una solicitud completa con códigos únicos por índice.
func validRequest(i int) *dto.CreateOficialRequest {
	return &dto.CreateOficialRequest{
		NombreCompleto:     fmt.Sprintf("Oficial Prueba %02d", i),
		CURP:               fmt.Sprintf("AAAA000000HDFLRN%02d", i),
		CUIP:               fmt.Sprintf("CUIP%04d", i),
		CUP:                fmt.Sprintf("CUP%04d", i),
		Edad:               "30",
		Sexo:               "Masculino",
		EstadoCivil:        "Soltero",
		AreaAdscripcion:    "Operativa",
		Grado:              "Policía Tercero",
		CargoActual:        "Patrullero",
		FechaIngreso:       "2020-01-15",
		Escolaridad:        "Preparatoria",
		TelefonoContacto:   "5512345678",
		TelefonoEmergencia: "5587654321",
		Funcion:            "Vigilancia",
	}
}

func makePDFHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("pdfFile", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 prueba"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["pdfFile"][0]
}

func countOficiales(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.OficialModel{}).Count(&n).Error)
	return n
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestCreateOficial(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest(1)
	req.CURP = "aaaa000000hdflrn01" // debe normalizarse a mayúsculas

	id, err := svc.Create(ctx, req, nil)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var curps []string
	require.NoError(t, db.Model(&model.OficialModel{}).
		Where("id = ?", id).Pluck("curp", &curps).Error)
	require.Len(t, curps, 1)
	assert.Equal(t, "AAAA000000HDFLRN01", curps[0])

	var activos int64
	require.NoError(t, db.Model(&model.OficialModel{}).
		Where("activo = ?", true).Count(&activos).Error)
	assert.Equal(t, int64(1), activos, "el oficial nuevo debe quedar activo")
}

func TestCreateOficialCamposFaltantes(t *testing.T) {
	svc, db, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &dto.CreateOficialRequest{}, nil)
	require.Error(t, err)

	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.KindValidation, e.Kind)
	assert.Contains(t, e.Message, "Faltan campos requeridos:")
	// se reporta la lista completa, no solo el primer campo
	assert.Len(t, e.Fields, 15)
	assert.Contains(t, e.Fields, "curp")
	assert.Contains(t, e.Fields, "telefonoEmergencia")

	assert.Equal(t, int64(0), countOficiales(t, db), "la validación no debe insertar nada")
}

func TestCreateOficialCURPLongitud(t *testing.T) {
	svc, db, _ := newTestService(t)

	req := validRequest(1)
	req.CURP = "AAAA000000HDFLRN0" // 17 caracteres

	_, err := svc.Create(context.Background(), req, nil)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Equal(t, "La CURP debe tener 18 caracteres", errs.Coerce(err).Message)
	assert.Equal(t, int64(0), countOficiales(t, db))
}

func TestCreateOficialEdadLimites(t *testing.T) {
	tests := []struct {
		name    string
		edad    string
		wantErr bool
	}{
		{"menor al mínimo", "17", true},
		{"mayor al máximo", "101", true},
		{"no numérica", "treinta", true},
		{"límite inferior", "18", false},
		{"límite superior", "100", false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db, _ := newTestService(t)

			req := validRequest(i)
			req.Edad = tt.edad

			_, err := svc.Create(context.Background(), req, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsKind(err, errs.KindValidation))
				assert.Equal(t, "La edad debe ser un número entre 18 y 100", errs.Coerce(err).Message)
				assert.Equal(t, int64(0), countOficiales(t, db))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), countOficiales(t, db))
			}
		})
	}
}

func TestCreateOficialFechaInvalida(t *testing.T) {
	svc, db, _ := newTestService(t)

	req := validRequest(1)
	req.FechaIngreso = "15/01/2020"

	_, err := svc.Create(context.Background(), req, nil)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
	assert.Equal(t, "El formato de fecha debe ser YYYY-MM-DD", errs.Coerce(err).Message)
	assert.Equal(t, int64(0), countOficiales(t, db))
}

func TestCreateOficialDuplicado(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest(1), nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(r *dto.CreateOficialRequest)
	}{
		{"misma CURP en minúsculas", func(r *dto.CreateOficialRequest) {
			r.CURP = "aaaa000000hdflrn01"
		}},
		{"misma CUIP", func(r *dto.CreateOficialRequest) {
			r.CUIP = "CUIP0001"
		}},
		{"misma CUP", func(r *dto.CreateOficialRequest) {
			r.CUP = "CUP0001"
		}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(10 + i) // códigos distintos salvo el mutado
			tt.mutate(req)

			_, err := svc.Create(ctx, req, nil)
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindConflict))
			assert.Equal(t, "Ya existe un oficial con el mismo CURP, CUIP o CUP", errs.Coerce(err).Message)
		})
	}

	assert.Equal(t, int64(1), countOficiales(t, db), "solo el primer registro debe persistir")
}

func TestCreateOficialConAdjunto(t *testing.T) {
	svc, db, uploadDir := newTestService(t)

	id, err := svc.Create(context.Background(), validRequest(1), makePDFHeader(t, "expediente.pdf"))
	require.NoError(t, err)

	var rutas []string
	require.NoError(t, db.Model(&model.OficialModel{}).
		Where("id = ?", id).Pluck("ruta_pdf", &rutas).Error)
	require.Len(t, rutas, 1)
	ruta := rutas[0]
	require.NotEmpty(t, ruta)
	assert.Contains(t, ruta, "expediente.pdf")

	// promovido al directorio definitivo, tmp/ limpio
	_, err = os.Stat(filepath.Join(uploadDir, ruta))
	assert.NoError(t, err)
	assert.Empty(t, listFiles(t, filepath.Join(uploadDir, "tmp")))
}

func TestCreateOficialFallidoNoDejaArchivos(t *testing.T) {
	svc, db, uploadDir := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest(1), nil)
	require.NoError(t, err)

	dup := validRequest(2)
	dup.CURP = "AAAA000000HDFLRN01"

	_, err = svc.Create(ctx, dup, makePDFHeader(t, "huerfano.pdf"))
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConflict))

	assert.Empty(t, listFiles(t, uploadDir), "el adjunto del alta fallida no debe promoverse")
	assert.Empty(t, listFiles(t, filepath.Join(uploadDir, "tmp")), "el temporal debe descartarse")
	assert.Equal(t, int64(1), countOficiales(t, db))
}

func TestBuscar(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	r1 := validRequest(1)
	r1.NombreCompleto = "Juan Garcia Lopez"
	_, err := svc.Create(ctx, r1, nil)
	require.NoError(t, err)

	r2 := validRequest(2)
	r2.NombreCompleto = "Maria Hernandez Ruiz"
	r2.CargoActual = "Comandante de Turno"
	_, err = svc.Create(ctx, r2, nil)
	require.NoError(t, err)

	t.Run("término vacío", func(t *testing.T) {
		_, err := svc.Buscar(ctx, "   ")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Equal(t, "Término de búsqueda requerido", errs.Coerce(err).Message)
	})

	t.Run("por nombre, insensible a mayúsculas", func(t *testing.T) {
		rows, err := svc.Buscar(ctx, "GARCIA")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Juan Garcia Lopez", rows[0].NombreCompleto)
	})

	t.Run("por cargo", func(t *testing.T) {
		rows, err := svc.Buscar(ctx, "comandante")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Maria Hernandez Ruiz", rows[0].NombreCompleto)
	})

	t.Run("por CURP parcial", func(t *testing.T) {
		rows, err := svc.Buscar(ctx, "hdflrn02")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "CUIP0002", rows[0].CUIP)
	})

	t.Run("sin coincidencias", func(t *testing.T) {
		rows, err := svc.Buscar(ctx, "inexistente")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestEstadisticas(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 3; i++ {
		id, err := svc.Create(ctx, validRequest(i), nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, db.Model(&model.OficialModel{}).
		Where("id = ?", ids[0]).Update("activo", false).Error)

	stats, err := svc.Estadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Activos)
	assert.Equal(t, int64(1), stats.Inactivos)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, stats.Total, stats.Activos+stats.Inactivos)
}
