// Package workflow implementa la máquina de estados de finalización y el
// motor de acciones masivas de la cola de aprobación.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/metrics"
)

// Actor es quien ejecuta la transición (del JWT verificado).
type Actor struct {
	ID   string
	Role string
}

// Service gobierna las transiciones Pending ⇄ Finalized y las acciones
// masivas. La serialización de transiciones concurrentes vive en el update
// condicional del repositorio, no aquí.
type Service struct {
	companies repository.CompanyRepository
	validate  *validator.Validate
	maxItems  int
}

// NewService construye el servicio de workflow. maxItems limita el tamaño de
// los lotes masivos (<=0 usa 50).
func NewService(companies repository.CompanyRepository, maxItems int) *Service {
	if maxItems <= 0 {
		maxItems = 50
	}
	return &Service{
		companies: companies,
		validate:  validator.New(),
		maxItems:  maxItems,
	}
}

// Finalize transiciona Pending → Finalized. Requiere canFinalize; registra al
// actor como finalized_by. Dos finalize concurrentes sobre la misma empresa
// no pueden reportar éxito ambos: el update condicional deja pasar solo uno.
func (s *Service) Finalize(ctx context.Context, companyID string, actor Actor) error {
	if !rbac.Has(actor.Role, rbac.PermCanFinalize) {
		return domain.ErrForbidden
	}
	now := time.Now()
	ok, err := s.companies.SetFinalization(ctx, companyID,
		entity.FinalizationPending, entity.FinalizationFinalized, actor.ID, &now)
	if err != nil {
		return fmt.Errorf("finalizar empresa: %w", err)
	}
	if !ok {
		company, err := s.companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		return domain.ErrAlreadyFinalized
	}
	metrics.FinalizationsTotal.WithLabelValues("finalize").Inc()
	return nil
}

// Unfinalize revierte Finalized → Pending con el mismo permiso; limpia
// finalized_by y finalized_at.
func (s *Service) Unfinalize(ctx context.Context, companyID string, actor Actor) error {
	if !rbac.Has(actor.Role, rbac.PermCanFinalize) {
		return domain.ErrForbidden
	}
	ok, err := s.companies.SetFinalization(ctx, companyID,
		entity.FinalizationFinalized, entity.FinalizationPending, "", nil)
	if err != nil {
		return fmt.Errorf("revertir finalización: %w", err)
	}
	if !ok {
		company, err := s.companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		return domain.ErrNotFinalized
	}
	metrics.FinalizationsTotal.WithLabelValues("unfinalize").Inc()
	return nil
}

// BulkApprove intenta finalizar cada id del lote de forma independiente; un
// fallo individual no aborta el resto. Devuelve cuántas empresas
// transicionaron realmente.
func (s *Service) BulkApprove(ctx context.Context, ids []string, actor Actor) (int, error) {
	if !rbac.Has(actor.Role, rbac.PermCanFinalize) {
		return 0, domain.ErrForbidden
	}
	if len(ids) > s.maxItems {
		return 0, domain.ErrBulkLimitExceeded
	}
	updated := 0
	for _, id := range ids {
		if err := s.Finalize(ctx, id, actor); err != nil {
			continue
		}
		updated++
	}
	return updated, nil
}

// BulkReject cuenta la decisión de rechazo sin tocar el estado de
// finalización: solo cuentan los ids existentes que siguen pendientes.
// El registro de la decisión no ocurre aquí: lo escribe el wrapper de
// auditoría de la ruta (una entrada REJECT por request). Un caller fuera de
// HTTP debe registrar la decisión por su cuenta.
func (s *Service) BulkReject(ctx context.Context, ids []string, actor Actor) (int, error) {
	if !rbac.Has(actor.Role, rbac.PermCanFinalize) {
		return 0, domain.ErrForbidden
	}
	if len(ids) > s.maxItems {
		return 0, domain.ErrBulkLimitExceeded
	}
	updated := 0
	for _, id := range ids {
		company, err := s.companies.GetByID(ctx, id)
		if err != nil || company == nil {
			continue
		}
		if company.FinalizationStatus != entity.FinalizationPending {
			continue
		}
		updated++
	}
	return updated, nil
}

// BulkImport valida y crea cada registro de forma independiente. Un registro
// inválido se reporta en Errors con su índice y motivo, sin bloquear al resto.
func (s *Service) BulkImport(ctx context.Context, records []dto.CompanyImportRecord, actor Actor) (*dto.ImportResult, error) {
	if !rbac.Has(actor.Role, rbac.PermCanCreate) {
		return nil, domain.ErrForbidden
	}
	if len(records) > s.maxItems {
		return nil, domain.ErrBulkLimitExceeded
	}
	result := &dto.ImportResult{Errors: []dto.ImportError{}}
	for i, rec := range records {
		if err := s.validate.Struct(rec); err != nil {
			result.Errors = append(result.Errors, dto.ImportError{Index: i, Reason: err.Error()})
			continue
		}
		revenue := decimal.Zero
		if rec.AnnualRevenue != "" {
			parsed, err := decimal.NewFromString(rec.AnnualRevenue)
			if err != nil {
				result.Errors = append(result.Errors, dto.ImportError{Index: i, Reason: "annual_revenue inválido"})
				continue
			}
			revenue = parsed
		}
		now := time.Now()
		company := &entity.Company{
			ID:                 uuid.New().String(),
			Name:               rec.Name,
			Industry:           rec.Industry,
			Region:             rec.Region,
			AnnualRevenue:      revenue,
			FinalizationStatus: entity.FinalizationPending,
			IsPublic:           rec.IsPublic,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := s.companies.Create(ctx, company); err != nil {
			result.Errors = append(result.Errors, dto.ImportError{Index: i, Reason: err.Error()})
			continue
		}
		result.Count++
	}
	return result, nil
}
