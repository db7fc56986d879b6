package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CustomFieldRepository define el puerto de persistencia para CustomFieldDef.
type CustomFieldRepository interface {
	Create(ctx context.Context, def *entity.CustomFieldDef) error
	GetByID(ctx context.Context, id string) (*entity.CustomFieldDef, error)
	Update(ctx context.Context, def *entity.CustomFieldDef) error
	ListByEntityType(ctx context.Context, entityType string) ([]*entity.CustomFieldDef, error)
	Delete(ctx context.Context, id string) error
}
