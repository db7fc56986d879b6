package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

// FollowUpRepo implementación del puerto FollowUpRepository sobre PostgreSQL.
// DealValue es NUMERIC y viaja como shopspring/decimal vía el codec del pool.
type FollowUpRepo struct {
	pool *pgxpool.Pool
}

// NewFollowUpRepository construye el adaptador de persistencia para seguimientos.
func NewFollowUpRepository(pool *pgxpool.Pool) *FollowUpRepo {
	return &FollowUpRepo{pool: pool}
}

const followUpColumns = `id, company_id, notes, deal_value, due_date, done_at, created_by, created_at, updated_at`

func scanFollowUp(row interface{ Scan(...any) error }) (*entity.FollowUp, error) {
	var f entity.FollowUp
	err := row.Scan(&f.ID, &f.CompanyID, &f.Notes, &f.DealValue, &f.DueDate,
		&f.DoneAt, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste un nuevo seguimiento.
func (r *FollowUpRepo) Create(ctx context.Context, followUp *entity.FollowUp) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO follow_ups (` + followUpColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		followUp.ID, followUp.CompanyID, followUp.Notes, followUp.DealValue,
		followUp.DueDate, followUp.DoneAt, followUp.CreatedBy,
		followUp.CreatedAt, followUp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert follow_up: %w", err)
	}
	return nil
}

// GetByID obtiene un seguimiento por ID.
func (r *FollowUpRepo) GetByID(ctx context.Context, id string) (*entity.FollowUp, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	f, err := scanFollowUp(r.pool.QueryRow(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get follow_up: %w", err)
	}
	return f, nil
}

// Update actualiza un seguimiento existente.
func (r *FollowUpRepo) Update(ctx context.Context, followUp *entity.FollowUp) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE follow_ups SET notes = $2, deal_value = $3, due_date = $4,
			done_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		followUp.ID, followUp.Notes, followUp.DealValue, followUp.DueDate,
		followUp.DoneAt, followUp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update follow_up: %w", err)
	}
	return nil
}

// ListByCompany devuelve los seguimientos de una empresa con paginación.
func (r *FollowUpRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.FollowUp, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list follow_ups: %w", err)
	}
	defer rows.Close()

	var list []*entity.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan follow_up: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Delete elimina un seguimiento por ID.
func (r *FollowUpRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM follow_ups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete follow_up: %w", err)
	}
	return nil
}
