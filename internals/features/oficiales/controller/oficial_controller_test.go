package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sistema_policial_backend/internals/configs"
	"sistema_policial_backend/internals/features/oficiales/model"
	"sistema_policial_backend/internals/features/oficiales/route"
	"sistema_policial_backend/internals/helpers/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.OficialModel{}))

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	route.OficialRoutes(app.Group("/api"), db, files, configs.Config{Env: "development"})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func oficialForm(t *testing.T, overrides map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	fields := map[string]string{
		"nombreCompleto":     "Juan Garcia Lopez",
		"curp":               "AAAA000000HDFLRN01",
		"cuip":               "CUIP0001",
		"cup":                "CUP0001",
		"edad":               "30",
		"sexo":               "Masculino",
		"estadoCivil":        "Soltero",
		"areaAdscripcion":    "Operativa",
		"grado":              "Policía Tercero",
		"cargoActual":        "Patrullero",
		"fechaIngreso":       "2020-01-15",
		"escolaridad":        "Preparatoria",
		"telefonoContacto":   "5512345678",
		"telefonoEmergencia": "5587654321",
		"funcion":            "Vigilancia",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCrearOficialEndpoint(t *testing.T) {
	app := newTestApp(t)

	body, contentType := oficialForm(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/oficiales", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Oficial guardado exitosamente", got["message"])
	assert.NotNil(t, got["id"])
}

func TestCrearOficialDuplicadoEndpoint(t *testing.T) {
	app := newTestApp(t)

	body, contentType := oficialForm(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/oficiales", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// mismos códigos: el duplicado sale como 500 con mensaje propio
	body, contentType = oficialForm(t, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/oficiales", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Ya existe un oficial con el mismo CURP, CUIP o CUP", got["message"])
}

func TestCrearOficialCamposFaltantesEndpoint(t *testing.T) {
	app := newTestApp(t)

	body, contentType := oficialForm(t, map[string]string{"curp": "", "cuip": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/oficiales", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, false, got["success"])
	assert.Contains(t, got["message"], "Faltan campos requeridos:")
	faltantes, ok := got["campos_faltantes"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"curp", "cuip"}, faltantes)
}

func TestBuscarEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("sin término devuelve 400", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/oficiales/buscar", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		got := decodeBody(t, resp)
		assert.Equal(t, false, got["success"])
		assert.Equal(t, "Término de búsqueda requerido", got["message"])
	})

	t.Run("con término devuelve data", func(t *testing.T) {
		body, contentType := oficialForm(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/oficiales", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/oficiales/buscar?termino=garcia", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		got := decodeBody(t, resp)
		assert.Equal(t, true, got["success"])
		data, ok := got["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 1)
		row := data[0].(map[string]any)
		assert.Equal(t, "Juan Garcia Lopez", row["nombre_completo"])
	})
}

func TestEstadisticasEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/estadisticas", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decodeBody(t, resp)
	assert.Equal(t, true, got["success"])
	data, ok := got["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 0, data["activos"])
	assert.EqualValues(t, 0, data["inactivos"])
	assert.EqualValues(t, 0, data["total"])
}
