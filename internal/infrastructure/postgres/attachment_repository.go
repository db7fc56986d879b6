package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación del puerto AttachmentRepository sobre PostgreSQL.
type AttachmentRepo struct {
	pool *pgxpool.Pool
}

// NewAttachmentRepository construye el adaptador de persistencia para adjuntos.
func NewAttachmentRepository(pool *pgxpool.Pool) *AttachmentRepo {
	return &AttachmentRepo{pool: pool}
}

const attachmentColumns = `id, entity_type, entity_id, file_name, content_type, size_bytes, storage_key, uploaded_by_id, created_at`

func scanAttachment(row interface{ Scan(...any) error }) (*entity.Attachment, error) {
	var a entity.Attachment
	err := row.Scan(&a.ID, &a.EntityType, &a.EntityID, &a.FileName, &a.ContentType,
		&a.SizeBytes, &a.StorageKey, &a.UploadedByID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste los metadatos de un adjunto.
func (r *AttachmentRepo) Create(ctx context.Context, attachment *entity.Attachment) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	query := `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		attachment.ID, attachment.EntityType, attachment.EntityID,
		attachment.FileName, attachment.ContentType, attachment.SizeBytes,
		attachment.StorageKey, attachment.UploadedByID, attachment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene un adjunto por ID.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*entity.Attachment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	a, err := scanAttachment(r.pool.QueryRow(ctx,
		`SELECT `+attachmentColumns+` FROM attachments WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return a, nil
}

// ListByEntity devuelve los adjuntos de una entidad.
func (r *AttachmentRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.Attachment, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	rows, err := r.pool.Query(ctx,
		`SELECT `+attachmentColumns+` FROM attachments WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at DESC`,
		entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete elimina los metadatos de un adjunto por ID.
func (r *AttachmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	if _, err := r.pool.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}
