package usecase

import (
	"context"
	"io"
)

// Cache es el puerto de caché de lecturas. La estrategia de caché está fuera
// de alcance: la implementación actual es un passthrough sin estado.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
}

// MailSender es el sink de correo. Fire-and-forget: un fallo de entrega no
// afecta la operación que disparó la notificación.
type MailSender interface {
	Send(to, subject, body string) error
}

// FileStore es el puerto de almacenamiento de archivos: put/get/delete por
// clave opaca generada. Los internos del storage están fuera de alcance.
type FileStore interface {
	Put(key string, r io.Reader) error
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}
