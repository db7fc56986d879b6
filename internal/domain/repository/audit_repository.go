package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// AuditRepository define el puerto append-only de auditoría. No hay Update ni
// Delete: las entradas nunca se mutan desde la aplicación.
type AuditRepository interface {
	CreateAuditLog(ctx context.Context, log *entity.AuditLog) error
	CreateSecurityEvent(ctx context.Context, event *entity.SecurityEvent) error
	ListAuditLogs(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
}
