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

// CustomFieldUseCase definiciones de campos personalizados. Administrarlas
// está gateado por canManageCustomFields en la ruta.
type CustomFieldUseCase struct {
	repo repository.CustomFieldRepository
}

// NewCustomFieldUseCase construye el caso de uso.
func NewCustomFieldUseCase(repo repository.CustomFieldRepository) *CustomFieldUseCase {
	return &CustomFieldUseCase{repo: repo}
}

// Create define un campo personalizado.
func (uc *CustomFieldUseCase) Create(ctx context.Context, in dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	now := time.Now()
	def := &entity.CustomFieldDef{
		ID:         uuid.New().String(),
		EntityType: in.EntityType,
		Name:       in.Name,
		FieldType:  in.FieldType,
		Required:   in.Required,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, def); err != nil {
		return nil, err
	}
	return toCustomFieldResponse(def), nil
}

// ListByEntityType lista las definiciones de un tipo de entidad.
func (uc *CustomFieldUseCase) ListByEntityType(ctx context.Context, entityType string) ([]dto.CustomFieldResponse, error) {
	list, err := uc.repo.ListByEntityType(ctx, entityType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomFieldResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toCustomFieldResponse(d))
	}
	return items, nil
}

// Update actualiza una definición.
func (uc *CustomFieldUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	def, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		def.Name = *in.Name
	}
	if in.FieldType != nil {
		def.FieldType = *in.FieldType
	}
	if in.Required != nil {
		def.Required = *in.Required
	}
	def.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, def); err != nil {
		return nil, err
	}
	return toCustomFieldResponse(def), nil
}

// Delete elimina una definición por ID.
func (uc *CustomFieldUseCase) Delete(ctx context.Context, id string) error {
	def, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if def == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCustomFieldResponse(d *entity.CustomFieldDef) *dto.CustomFieldResponse {
	return &dto.CustomFieldResponse{
		ID:         d.ID,
		EntityType: d.EntityType,
		Name:       d.Name,
		FieldType:  d.FieldType,
		Required:   d.Required,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
