package usecase

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// AuditUseCase consulta de solo lectura sobre el log de auditoría.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devuelve entradas del log, más recientes primero.
func (uc *AuditUseCase) List(ctx context.Context, limit, offset int) ([]dto.AuditLogResponse, error) {
	logs, err := uc.repo.ListAuditLogs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Changes:    json.RawMessage(l.Changes),
			IPAddress:  l.IPAddress,
			CreatedAt:  l.CreatedAt,
		})
	}
	return items, nil
}
