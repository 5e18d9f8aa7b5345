// file: internals/helpers/errs/errs.go
//
// Taxonomía de fallos del núcleo: cada operación atrapa sus propios errores,
// garantiza rollback/limpieza y los reduce a uno de estos cuatro tipos.
package errs

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type Kind int

const (
	KindValidation Kind = iota // entrada inválida o incompleta, sin mutación
	KindConflict               // violación de unicidad
	KindNotFound               // entidad referenciada inexistente
	KindPersistence            // store inaccesible o error inesperado del driver
)

type Error struct {
	Kind    Kind
	Message string
	Fields  []string // para validación: todos los campos faltantes, no solo el primero
	Err     error    // causa subyacente (driver), si la hay
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// Coerce normaliza cualquier error al tipo propio; lo que no venga
// tipificado se trata como fallo de persistencia.
func Coerce(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindPersistence, Message: "Error interno del servidor", Err: err}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

/* =========================
   Diagnóstico PostgreSQL
   ========================= */

// IsUniqueViolation detecta SQLSTATE 23505 tanto en pgx como en lib/pq.
func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// Diag extrae los campos de diagnóstico del driver (código, constraint,
// columna...). Devuelve nil si el error no viene de PostgreSQL. El caller
// decide si exponerlos; en producción se omiten siempre.
func Diag(err error) map[string]any {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return map[string]any{
			"code":       pgxErr.Code,
			"detail":     pgxErr.Detail,
			"hint":       pgxErr.Hint,
			"where":      pgxErr.Where,
			"schema":     pgxErr.SchemaName,
			"table":      pgxErr.TableName,
			"column":     pgxErr.ColumnName,
			"dataType":   pgxErr.DataTypeName,
			"constraint": pgxErr.ConstraintName,
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return map[string]any{
			"code":       string(pqErr.Code),
			"detail":     pqErr.Detail,
			"hint":       pqErr.Hint,
			"where":      pqErr.Where,
			"schema":     pqErr.Schema,
			"table":      pqErr.Table,
			"column":     pqErr.Column,
			"dataType":   pqErr.DataTypeName,
			"constraint": pqErr.Constraint,
		}
	}
	return nil
}
