package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	pool *pgxpool.Pool
}

// NewTicketRepository construye el adaptador de persistencia para tickets.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

const ticketColumns = `id, subject, description, status, priority, raised_by_id, assigned_to_id, created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (*entity.Ticket, error) {
	var t entity.Ticket
	err := row.Scan(&t.ID, &t.Subject, &t.Description, &t.Status, &t.Priority,
		&t.RaisedByID, &t.AssignedToID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(ctx context.Context, ticket *entity.Ticket) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.Subject, ticket.Description, ticket.Status, ticket.Priority,
		ticket.RaisedByID, ticket.AssignedToID, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	t, err := scanTicket(r.pool.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// Update actualiza un ticket existente.
func (r *TicketRepo) Update(ctx context.Context, ticket *entity.Ticket) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		UPDATE tickets SET subject = $2, description = $3, status = $4,
			priority = $5, assigned_to_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.Subject, ticket.Description, ticket.Status,
		ticket.Priority, ticket.AssignedToID, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// List devuelve tickets con paginación.
func (r *TicketRepo) List(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina un ticket por ID.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
