package dto

import "time"

// CreateCommentRequest entrada para comentar una entidad.
type CreateCommentRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=company contact task ticket"`
	EntityID   string `json:"entity_id" validate:"required,uuid"`
	Body       string `json:"body" validate:"required,min=1,max=2000"`
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	AuthorID   string    `json:"author_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentListResponse listado paginado de comentarios.
type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
