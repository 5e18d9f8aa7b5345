// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sistema_policial_backend/internals/helpers/errs"
)

/* ===============================
   Success responses
   {success, message?, data?}
=================================*/

// JsonData: lecturas (GET): solo success + data.
func JsonData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonOK: success genérico con mensaje.
func JsonOK(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: altas (POST) → 201 con el id generado.
func JsonCreated(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

/* ===============================
   Error responses
   {success:false, message, error, details?}
=================================*/

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   message,
	})
}

// JsonFault mapea un fallo tipificado (errs) a una única respuesta HTTP.
// Los detalles de diagnóstico del store solo se exponen fuera de producción.
func JsonFault(c *fiber.Ctx, err error, exposeDiag bool) error {
	e := errs.Coerce(err)

	body := fiber.Map{
		"success": false,
		"message": e.Message,
		"error":   e.Message,
	}
	if len(e.Fields) > 0 {
		body["campos_faltantes"] = e.Fields
	}
	if exposeDiag {
		if diag := errs.Diag(e); diag != nil {
			body["details"] = diag
		}
	}
	return c.Status(statusFor(e.Kind)).JSON(body)
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return fiber.StatusBadRequest
	case errs.KindNotFound:
		return fiber.StatusNotFound
	case errs.KindConflict:
		// los duplicados salen como 500 con mensaje propio,
		// igual que el frontend existente espera
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
