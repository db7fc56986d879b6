// Package storage implementa el file store de adjuntos sobre el filesystem
// local. Las claves son opacas (UUID) y se usan tal cual como nombre de archivo.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore guarda cada blob como un archivo bajo dir.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) (string, error) {
	// Las claves son UUIDs generados por la app; rechazar cualquier otra cosa
	// evita traversal si alguna vez llega una clave externa.
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", fmt.Errorf("clave de storage inválida: %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Put escribe el contenido del reader bajo la clave.
func (s *LocalStore) Put(key string, r io.Reader) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return f.Close()
}

// Get abre el contenido de la clave para lectura.
func (s *LocalStore) Get(key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	return f, nil
}

// Delete elimina el archivo de la clave. Ignora claves ya inexistentes.
func (s *LocalStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}
