package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

const contactColumns = `id, company_id, name, email, phone, position, created_at, updated_at`

func scanContact(row interface{ Scan(...any) error }) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone,
		&c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo contacto.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.CompanyID, contact.Name, contact.Email,
		contact.Phone, contact.Position, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID.
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	c, err := scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Update actualiza un contacto existente.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE contacts SET name = $2, email = $3, phone = $4, position = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Phone,
		contact.Position, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// ListByCompany devuelve los contactos de una empresa con paginación.
func (r *ContactRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contact, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
