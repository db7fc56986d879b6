package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CustomFieldRepository = (*CustomFieldRepo)(nil)

// CustomFieldRepo implementación del puerto CustomFieldRepository sobre PostgreSQL.
type CustomFieldRepo struct {
	pool *pgxpool.Pool
}

// NewCustomFieldRepository construye el adaptador de persistencia para campos personalizados.
func NewCustomFieldRepository(pool *pgxpool.Pool) *CustomFieldRepo {
	return &CustomFieldRepo{pool: pool}
}

const customFieldColumns = `id, entity_type, name, field_type, required, created_at, updated_at`

func scanCustomField(row interface{ Scan(...any) error }) (*entity.CustomFieldDef, error) {
	var d entity.CustomFieldDef
	err := row.Scan(&d.ID, &d.EntityType, &d.Name, &d.FieldType, &d.Required,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste una definición de campo. El par (entity_type, name) es único.
func (r *CustomFieldRepo) Create(ctx context.Context, def *entity.CustomFieldDef) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO custom_field_defs (` + customFieldColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		def.ID, def.EntityType, def.Name, def.FieldType, def.Required,
		def.CreatedAt, def.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert custom field: %w", err)
	}
	return nil
}

// GetByID obtiene una definición por ID.
func (r *CustomFieldRepo) GetByID(ctx context.Context, id string) (*entity.CustomFieldDef, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	d, err := scanCustomField(r.pool.QueryRow(ctx,
		`SELECT `+customFieldColumns+` FROM custom_field_defs WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get custom field: %w", err)
	}
	return d, nil
}

// Update actualiza una definición existente.
func (r *CustomFieldRepo) Update(ctx context.Context, def *entity.CustomFieldDef) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE custom_field_defs SET name = $2, field_type = $3, required = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		def.ID, def.Name, def.FieldType, def.Required, def.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update custom field: %w", err)
	}
	return nil
}

// ListByEntityType devuelve las definiciones de un tipo de entidad.
func (r *CustomFieldRepo) ListByEntityType(ctx context.Context, entityType string) ([]*entity.CustomFieldDef, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+customFieldColumns+` FROM custom_field_defs WHERE entity_type = $1 ORDER BY name`,
		entityType)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	defer rows.Close()

	var list []*entity.CustomFieldDef
	for rows.Next() {
		d, err := scanCustomField(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custom field: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete elimina una definición por ID.
func (r *CustomFieldRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM custom_field_defs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete custom field: %w", err)
	}
	return nil
}
