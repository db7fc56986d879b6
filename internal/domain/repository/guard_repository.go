package repository

import "context"

// EntityState es la vista mínima de una entidad que necesita la cadena de
// middlewares: si está (o hereda) finalización y quiénes son sus dueños.
type EntityState struct {
	Exists    bool
	Finalized bool
	// OwnerIDs usuarios con propiedad directa sobre la entidad (asignados,
	// creador, quien la subió). La regla de ownership acepta cualquiera.
	OwnerIDs []string
}

// EntityStateRepository resuelve el estado de guardia de una entidad por tipo
// e ID. contact y follow_up heredan la finalización de su empresa.
type EntityStateRepository interface {
	Lookup(ctx context.Context, entityType, id string) (*EntityState, error)
}
