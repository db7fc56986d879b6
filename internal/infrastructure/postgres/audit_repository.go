package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación append-only del puerto AuditRepository. No expone
// Update ni Delete: las tablas de auditoría solo crecen.
type AuditRepo struct {
	pool *pgxpool.Pool
}

// NewAuditRepository construye el adaptador de persistencia de auditoría.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// CreateAuditLog inserta una entrada del log de auditoría.
func (r *AuditRepo) CreateAuditLog(ctx context.Context, log *entity.AuditLog) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, changes, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		log.ID, log.UserID, log.Action, log.EntityType, log.EntityID,
		log.Changes, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// CreateSecurityEvent inserta un evento de seguridad.
func (r *AuditRepo) CreateSecurityEvent(ctx context.Context, event *entity.SecurityEvent) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO security_events (id, event_type, user_id, ip_address, user_agent, details, severity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.EventType, event.UserID, event.IPAddress,
		event.UserAgent, event.Details, event.Severity, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert security event: %w", err)
	}
	return nil
}

// ListAuditLogs devuelve entradas del log, más recientes primero. Los IDs son
// ULID así que el orden por id coincide con el orden temporal.
func (r *AuditRepo) ListAuditLogs(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, action, entity_type, entity_id, changes, ip_address, created_at
		FROM audit_logs ORDER BY id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID,
			&l.Changes, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
