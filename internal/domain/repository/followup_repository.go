package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// FollowUpRepository define el puerto de persistencia para FollowUp.
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *entity.FollowUp) error
	GetByID(ctx context.Context, id string) (*entity.FollowUp, error)
	Update(ctx context.Context, followUp *entity.FollowUp) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.FollowUp, error)
	Delete(ctx context.Context, id string) error
}
