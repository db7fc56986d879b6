package entity

import "time"

// Comment es un comentario sobre cualquier entidad (entity_type + entity_id).
// Crear comentarios exige el permiso canComment.
type Comment struct {
	ID         string
	EntityType string // company, contact, task, ticket
	EntityID   string
	AuthorID   string
	Body       string
	CreatedAt  time.Time
}
