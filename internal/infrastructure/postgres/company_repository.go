package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, name, industry, region, annual_revenue,
	assigned_data_collector_id, assigned_converter_id,
	finalization_status, finalized_by_id, finalized_at, is_public,
	created_at, updated_at`

func scanCompany(row interface{ Scan(...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Region, &c.AnnualRevenue,
		&c.AssignedDataCollectorID, &c.AssignedConverterID,
		&c.FinalizationStatus, &c.FinalizedByID, &c.FinalizedAt, &c.IsPublic,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.Industry, company.Region, company.AnnualRevenue,
		company.AssignedDataCollectorID, company.AssignedConverterID,
		company.FinalizationStatus, company.FinalizedByID, company.FinalizedAt, company.IsPublic,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	c, err := scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza los campos editables de una empresa. El estado de
// finalización solo se toca vía SetFinalization.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE companies SET name = $2, industry = $3, region = $4, annual_revenue = $5,
			assigned_data_collector_id = $6, assigned_converter_id = $7,
			is_public = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.Industry, company.Region, company.AnnualRevenue,
		company.AssignedDataCollectorID, company.AssignedConverterID,
		company.IsPublic, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación, filtrando por estado de finalización
// si status no está vacío.
func (r *CompanyRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Company, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `SELECT ` + companyColumns + ` FROM companies`
	args := []any{limit, offset}
	if status != "" {
		query += ` WHERE finalization_status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// SetFinalization transiciona el estado de finalización solo si el estado
// actual coincide con fromStatus. El WHERE condicional serializa transiciones
// concurrentes: de N finalize simultáneos sobre la misma empresa exactamente
// uno afecta la fila.
func (r *CompanyRepo) SetFinalization(ctx context.Context, id, fromStatus, toStatus, byID string, at *time.Time) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE companies
		SET finalization_status = $3, finalized_by_id = $4, finalized_at = $5, updated_at = now()
		WHERE id = $1 AND finalization_status = $2`
	cmd, err := r.pool.Exec(ctx, query, id, fromStatus, toStatus, byID, at)
	if err != nil {
		return false, fmt.Errorf("set finalization: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
