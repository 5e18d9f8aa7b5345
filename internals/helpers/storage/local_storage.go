// file: internals/helpers/storage/local_storage.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage es el blob store de adjuntos: un directorio de uploads
// servido estáticamente, más un subdirectorio tmp/ de recepción.
//
// El protocolo es en dos fases: AcceptTemp recibe el archivo en tmp/,
// Promote lo renombra a su ubicación definitiva. Si la request falla en
// cualquier punto intermedio, Discard garantiza que no quede huérfano.
type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(dir, "tmp"), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStorage{Dir: dir}, nil
}

// TempFile es un adjunto ya recibido pero aún no comprometido.
type TempFile struct {
	store    *LocalStorage
	tempPath string

	// Name es el basename definitivo (prefijo de timestamp + nombre original),
	// el único dato que se persiste en la fila.
	Name string
}

// AcceptTemp copia el archivo subido a tmp/ bajo un nombre aleatorio y fija
// el basename definitivo que tendrá tras Promote.
func (s *LocalStorage) AcceptTemp(fh *multipart.FileHeader) (*TempFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	tempPath := filepath.Join(s.Dir, "tmp", uuid.NewString())
	dst, err := os.Create(tempPath)
	if err != nil {
		return nil, fmt.Errorf("crear archivo temporal: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("escribir archivo temporal: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("cerrar archivo temporal: %w", err)
	}

	return &TempFile{
		store:    s,
		tempPath: tempPath,
		Name:     FinalName(fh.Filename),
	}, nil
}

// Promote mueve el temporal a su ubicación definitiva. Se invoca antes del
// COMMIT de la fila: si falla, la transacción se revierte; si el COMMIT
// posterior falla, el caller retira el archivo con Remove.
func (t *TempFile) Promote() error {
	if err := os.Rename(t.tempPath, filepath.Join(t.store.Dir, t.Name)); err != nil {
		return fmt.Errorf("mover adjunto a uploads: %w", err)
	}
	t.tempPath = ""
	return nil
}

// Discard elimina el temporal si sigue existiendo. Seguro de llamar siempre
// (incluso tras Promote); pensado para defer en cualquier salida con error.
func (t *TempFile) Discard() {
	if t == nil || t.tempPath == "" {
		return
	}
	_ = os.Remove(t.tempPath)
	t.tempPath = ""
}

// Remove borra un adjunto ya promovido (camino de error post-promote).
func (s *LocalStorage) Remove(name string) error {
	return os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
}

// FinalName genera el basename definitivo: timestamp en milisegundos +
// nombre original saneado, igual que hacía multer en el frontend viejo.
func FinalName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." {
		base = "archivo.pdf"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}
