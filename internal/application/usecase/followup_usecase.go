package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// FollowUpUseCase reglas de negocio para seguimientos comerciales. Heredan el
// estado de finalización de su empresa; ese guard corre en la ruta.
type FollowUpUseCase struct {
	repo      repository.FollowUpRepository
	companies repository.CompanyRepository
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(repo repository.FollowUpRepository, companies repository.CompanyRepository) *FollowUpUseCase {
	return &FollowUpUseCase{repo: repo, companies: companies}
}

// Create crea un seguimiento sobre una empresa existente.
func (uc *FollowUpUseCase) Create(ctx context.Context, actorID string, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	value := decimal.Zero
	if in.DealValue != "" {
		parsed, err := decimal.NewFromString(in.DealValue)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		value = parsed
	}
	now := time.Now()
	followUp := &entity.FollowUp{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Notes:     in.Notes,
		DealValue: value,
		DueDate:   in.DueDate,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, followUp); err != nil {
		return nil, err
	}
	return toFollowUpResponse(followUp), nil
}

// GetByID obtiene un seguimiento por ID.
func (uc *FollowUpUseCase) GetByID(ctx context.Context, id string) (*dto.FollowUpResponse, error) {
	followUp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, nil
	}
	return toFollowUpResponse(followUp), nil
}

// ListByCompany lista los seguimientos de una empresa.
func (uc *FollowUpUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) (*dto.FollowUpListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFollowUpResponse(f))
	}
	return &dto.FollowUpListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un seguimiento. Done=true marca DoneAt; Done=false lo limpia.
func (uc *FollowUpUseCase) Update(ctx context.Context, id string, in dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
	followUp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if followUp == nil {
		return nil, domain.ErrNotFound
	}
	if in.Notes != nil {
		followUp.Notes = *in.Notes
	}
	if in.DealValue != nil {
		parsed, err := decimal.NewFromString(*in.DealValue)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		followUp.DealValue = parsed
	}
	if in.DueDate != nil {
		followUp.DueDate = in.DueDate
	}
	if in.Done != nil {
		if *in.Done {
			now := time.Now()
			followUp.DoneAt = &now
		} else {
			followUp.DoneAt = nil
		}
	}
	followUp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, followUp); err != nil {
		return nil, err
	}
	return toFollowUpResponse(followUp), nil
}

// Delete elimina un seguimiento por ID.
func (uc *FollowUpUseCase) Delete(ctx context.Context, id string) error {
	followUp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if followUp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toFollowUpResponse(f *entity.FollowUp) *dto.FollowUpResponse {
	return &dto.FollowUpResponse{
		ID:        f.ID,
		CompanyID: f.CompanyID,
		Notes:     f.Notes,
		DealValue: f.DealValue.String(),
		DueDate:   f.DueDate,
		DoneAt:    f.DoneAt,
		CreatedBy: f.CreatedBy,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
