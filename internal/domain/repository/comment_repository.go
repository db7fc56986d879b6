package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CommentRepository define el puerto de persistencia para Comment.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]*entity.Comment, error)
	Delete(ctx context.Context, id string) error
}
