// file: internals/helpers/fechas.go
package helper

import "time"

// Las lecturas nunca devuelven el tipo temporal nativo del store:
// fechas calendario como YYYY-MM-DD y timestamps como RFC 3339.

func FormatFecha(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
