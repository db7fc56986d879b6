package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TicketUseCase reglas de negocio para tickets internos. Levantar tickets
// exige el flag por-usuario canRaiseTickets, que viaja en el JWT.
type TicketUseCase struct {
	repo repository.TicketRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

// Create levanta un ticket. Si el actor no tiene habilitado canRaiseTickets,
// devuelve ErrTicketsDisabled.
func (uc *TicketUseCase) Create(ctx context.Context, actorID string, canRaiseTickets bool, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if !canRaiseTickets {
		return nil, domain.ErrTicketsDisabled
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	now := time.Now()
	ticket := &entity.Ticket{
		ID:          uuid.New().String(),
		Subject:     in.Subject,
		Description: in.Description,
		Status:      entity.TicketStatusOpen,
		Priority:    priority,
		RaisedByID:  actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// GetByID obtiene un ticket por ID.
func (uc *TicketUseCase) GetByID(ctx context.Context, id string) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	return toTicketResponse(ticket), nil
}

// List lista tickets con paginación.
func (uc *TicketUseCase) List(ctx context.Context, limit, offset int) (*dto.TicketListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return &dto.TicketListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un ticket. Con canUpdateAllTasks se puede tocar cualquier
// campo; quien levantó el ticket solo puede cambiar su Status.
func (uc *TicketUseCase) Update(ctx context.Context, id, actorID, actorRole string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if !rbac.Has(actorRole, rbac.PermCanUpdateAllTasks) {
		if ticket.RaisedByID != actorID || !in.StatusOnly() {
			return nil, domain.ErrForbidden
		}
	}
	if in.Subject != nil {
		ticket.Subject = *in.Subject
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.Status != nil {
		ticket.Status = *in.Status
	}
	if in.Priority != nil {
		ticket.Priority = *in.Priority
	}
	if in.AssignedToID != nil {
		ticket.AssignedToID = *in.AssignedToID
	}
	ticket.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// Delete elimina un ticket por ID.
func (uc *TicketUseCase) Delete(ctx context.Context, id string) error {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:           t.ID,
		Subject:      t.Subject,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		RaisedByID:   t.RaisedByID,
		AssignedToID: t.AssignedToID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
