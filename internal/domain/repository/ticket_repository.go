package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// TicketRepository define el puerto de persistencia para Ticket.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	Delete(ctx context.Context, id string) error
}
