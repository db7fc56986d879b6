package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// List filtra por estado de finalización; status vacío lista todas.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Company, error)
	Delete(ctx context.Context, id string) error
	// SetFinalization es un update condicional sobre el estado actual
	// (WHERE finalization_status = fromStatus). Devuelve false si ninguna fila
	// cambió, lo que serializa finalize/unfinalize concurrentes sobre la misma
	// empresa sin lost updates. Para revertir, byID va vacío y at en nil.
	SetFinalization(ctx context.Context, id, fromStatus, toStatus, byID string, at *time.Time) (bool, error)
}
