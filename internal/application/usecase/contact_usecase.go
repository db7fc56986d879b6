package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ContactUseCase reglas de negocio para contactos. Un contacto hereda el
// estado de finalización de su empresa; ese guard corre en la ruta.
type ContactUseCase struct {
	repo      repository.ContactRepository
	companies repository.CompanyRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, companies repository.CompanyRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, companies: companies}
}

// Create crea un contacto verificando que la empresa exista.
func (uc *ContactUseCase) Create(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID obtiene un contacto por ID.
func (uc *ContactUseCase) GetByID(ctx context.Context, id string) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	return toContactResponse(contact), nil
}

// ListByCompany lista los contactos de una empresa.
func (uc *ContactUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) (*dto.ContactListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContactResponse(c))
	}
	return &dto.ContactListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un contacto.
func (uc *ContactUseCase) Update(ctx context.Context, id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	if in.Position != nil {
		contact.Position = *in.Position
	}
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete elimina un contacto por ID.
func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
