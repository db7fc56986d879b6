package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	pool *pgxpool.Pool
}

// NewCommentRepository construye el adaptador de persistencia para comentarios.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// Create persiste un nuevo comentario.
func (r *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO comments (id, entity_type, entity_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.EntityType, comment.EntityID,
		comment.AuthorID, comment.Body, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByEntity devuelve los comentarios de una entidad, más recientes primero.
func (r *CommentRepo) ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]*entity.Comment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx, `
		SELECT id, entity_type, entity_id, author_id, body, created_at
		FROM comments WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		entityType, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.EntityType, &c.EntityID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un comentario por ID.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
