package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CompanyUseCase reglas de negocio para empresas. La visibilidad de empresas
// finalizadas se decide aquí con canReadFinalized; la protección de escritura
// sobre finalizadas vive en la cadena de middlewares.
type CompanyUseCase struct {
	repo  repository.CompanyRepository
	cache Cache
}

// NewCompanyUseCase construye el caso de uso con persistencia y caché.
func NewCompanyUseCase(repo repository.CompanyRepository, cache Cache) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, cache: cache}
}

// Create crea una empresa en estado pending.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	revenue := decimal.Zero
	if in.AnnualRevenue != "" {
		parsed, err := decimal.NewFromString(in.AnnualRevenue)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		revenue = parsed
	}
	now := time.Now()
	company := &entity.Company{
		ID:                      uuid.New().String(),
		Name:                    in.Name,
		Industry:                in.Industry,
		Region:                  in.Region,
		AnnualRevenue:           revenue,
		AssignedDataCollectorID: in.AssignedDataCollectorID,
		AssignedConverterID:     in.AssignedConverterID,
		FinalizationStatus:      entity.FinalizationPending,
		IsPublic:                in.IsPublic,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Si está finalizada y el rol del actor no tiene
// canReadFinalized, devuelve ErrForbidden (la finalización gatea visibilidad).
func (uc *CompanyUseCase) GetByID(ctx context.Context, id, actorRole string) (*dto.CompanyResponse, error) {
	if data, ok := uc.cache.Get(ctx, "company:"+id); ok {
		var cached dto.CompanyResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.FinalizationStatus == entity.FinalizationFinalized &&
				!rbac.Has(actorRole, rbac.PermCanReadFinalized) {
				return nil, domain.ErrForbidden
			}
			return &cached, nil
		}
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if company.IsFinalized() && !rbac.Has(actorRole, rbac.PermCanReadFinalized) {
		return nil, domain.ErrForbidden
	}
	out := toCompanyResponse(company)
	if data, err := json.Marshal(out); err == nil {
		uc.cache.Set(ctx, "company:"+id, data)
	}
	return out, nil
}

// ListPending lista las empresas pendientes (la cola de aprobación implícita).
func (uc *CompanyUseCase) ListPending(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	return uc.list(ctx, entity.FinalizationPending, limit, offset)
}

// ListFinalized lista las empresas finalizadas. La ruta exige canReadFinalized.
func (uc *CompanyUseCase) ListFinalized(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	return uc.list(ctx, entity.FinalizationFinalized, limit, offset)
}

func (uc *CompanyUseCase) list(ctx context.Context, status string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una empresa. El guard de finalización ya corrió en la ruta.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Industry != nil {
		company.Industry = *in.Industry
	}
	if in.Region != nil {
		company.Region = *in.Region
	}
	if in.AnnualRevenue != nil {
		parsed, err := decimal.NewFromString(*in.AnnualRevenue)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		company.AnnualRevenue = parsed
	}
	if in.AssignedDataCollectorID != nil {
		company.AssignedDataCollectorID = *in.AssignedDataCollectorID
	}
	if in.AssignedConverterID != nil {
		company.AssignedConverterID = *in.AssignedConverterID
	}
	if in.IsPublic != nil {
		company.IsPublic = *in.IsPublic
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, "company:"+id)
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa por ID.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, "company:"+id)
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                      c.ID,
		Name:                    c.Name,
		Industry:                c.Industry,
		Region:                  c.Region,
		AnnualRevenue:           c.AnnualRevenue.String(),
		AssignedDataCollectorID: c.AssignedDataCollectorID,
		AssignedConverterID:     c.AssignedConverterID,
		FinalizationStatus:      c.FinalizationStatus,
		FinalizedByID:           c.FinalizedByID,
		FinalizedAt:             c.FinalizedAt,
		IsPublic:                c.IsPublic,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}
