package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contact, error)
	Delete(ctx context.Context, id string) error
}
