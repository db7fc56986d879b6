package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.EntityStateRepository = (*GuardRepo)(nil)

// GuardRepo resuelve el estado de guardia (finalización y ownership) de una
// entidad con una sola consulta por tipo. contact y follow_up heredan la
// finalización de su empresa vía JOIN.
type GuardRepo struct {
	pool *pgxpool.Pool
}

// NewGuardRepository construye el adaptador de lookup para los middlewares.
func NewGuardRepository(pool *pgxpool.Pool) *GuardRepo {
	return &GuardRepo{pool: pool}
}

// Lookup devuelve el estado de la entidad. Exists=false si no hay fila.
func (r *GuardRepo) Lookup(ctx context.Context, entityType, id string) (*repository.EntityState, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	state := &repository.EntityState{}
	switch entityType {
	case "company":
		var status, collector, converter string
		err := r.pool.QueryRow(ctx, `
			SELECT finalization_status, assigned_data_collector_id, assigned_converter_id
			FROM companies WHERE id = $1`, id).Scan(&status, &collector, &converter)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup company: %w", err)
		}
		state.Exists = true
		state.Finalized = status == entity.FinalizationFinalized
		state.OwnerIDs = nonEmpty(collector, converter)

	case "contact":
		var status, collector, converter string
		err := r.pool.QueryRow(ctx, `
			SELECT c.finalization_status, c.assigned_data_collector_id, c.assigned_converter_id
			FROM contacts ct JOIN companies c ON c.id = ct.company_id
			WHERE ct.id = $1`, id).Scan(&status, &collector, &converter)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup contact: %w", err)
		}
		state.Exists = true
		state.Finalized = status == entity.FinalizationFinalized
		state.OwnerIDs = nonEmpty(collector, converter)

	case "follow_up":
		var status, createdBy string
		err := r.pool.QueryRow(ctx, `
			SELECT c.finalization_status, f.created_by
			FROM follow_ups f JOIN companies c ON c.id = f.company_id
			WHERE f.id = $1`, id).Scan(&status, &createdBy)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup follow_up: %w", err)
		}
		state.Exists = true
		state.Finalized = status == entity.FinalizationFinalized
		state.OwnerIDs = nonEmpty(createdBy)

	case "task":
		var assignedTo, assignedBy string
		err := r.pool.QueryRow(ctx,
			`SELECT assigned_to_id, assigned_by_id FROM tasks WHERE id = $1`, id).
			Scan(&assignedTo, &assignedBy)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup task: %w", err)
		}
		state.Exists = true
		state.OwnerIDs = nonEmpty(assignedTo, assignedBy)

	case "ticket":
		var raisedBy, assignedTo string
		err := r.pool.QueryRow(ctx,
			`SELECT raised_by_id, assigned_to_id FROM tickets WHERE id = $1`, id).
			Scan(&raisedBy, &assignedTo)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup ticket: %w", err)
		}
		state.Exists = true
		state.OwnerIDs = nonEmpty(raisedBy, assignedTo)

	case "attachment":
		var uploadedBy string
		err := r.pool.QueryRow(ctx,
			`SELECT uploaded_by_id FROM attachments WHERE id = $1`, id).Scan(&uploadedBy)
		if err != nil {
			if isNoRows(err) {
				return state, nil
			}
			return nil, fmt.Errorf("guard lookup attachment: %w", err)
		}
		state.Exists = true
		state.OwnerIDs = nonEmpty(uploadedBy)

	default:
		return nil, fmt.Errorf("guard lookup: tipo de entidad desconocido %q", entityType)
	}
	return state, nil
}

func nonEmpty(ids ...string) []string {
	var out []string
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
