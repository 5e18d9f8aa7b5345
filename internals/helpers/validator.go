// file: internals/helpers/validator.go
package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator construye el validador compartido por los servicios.
// Los nombres de campo en los errores son los del formulario (tag form),
// que son los que el cliente envió y espera ver en "campos_faltantes".
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}
