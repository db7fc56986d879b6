package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// AttachmentRepository define el puerto de persistencia para Attachment.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	GetByID(ctx context.Context, id string) (*entity.Attachment, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.Attachment, error)
	Delete(ctx context.Context, id string) error
}
